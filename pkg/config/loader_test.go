// Test Type: Unit Test
// Description: Tests for layered configuration loading

package config_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/schanno/pkg/config"
	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
	"github.com/arthur-debert/schanno/pkg/schematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolated(t *testing.T) config.Options {
	t.Helper()
	return config.Options{
		UserFile:   filepath.Join(t.TempDir(), "missing.toml"),
		ProjectDir: t.TempDir(),
		SkipEnv:    true,
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Equal(t, "least_common_first", cfg.Annotate.Strategy)
	assert.Equal(t, "increment_all", cfg.Fix.Strategy)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.True(t, cfg.Output.Backup)
	assert.Equal(t, ".bak", cfg.Output.BackupSuffix)
	assert.Equal(t, schematic.DefaultFilename, cfg.Output.DefaultFilename)
	assert.Equal(t, 0, cfg.Check.Jobs)
	assert.True(t, cfg.Check.FailOnProblems)
	assert.True(t, cfg.Engine.StrictStrategies)
}

func TestLoadLayers(t *testing.T) {
	t.Run("user_file_overrides_defaults", func(t *testing.T) {
		opts := isolated(t)
		writeFile(t, opts.UserFile, "[fix]\nstrategy = \"next_available\"\n")

		cfg, err := config.Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "next_available", cfg.Fix.Strategy)
		assert.Equal(t, "least_common_first", cfg.Annotate.Strategy)
	})

	t.Run("project_file_overrides_user_file", func(t *testing.T) {
		opts := isolated(t)
		writeFile(t, opts.UserFile, "[annotate]\nstrategy = \"most_common_first\"\n[check]\njobs = 2\n")
		writeFile(t, filepath.Join(opts.ProjectDir, config.ProjectFileName),
			"[annotate]\nstrategy = \"highest_value_first\"\n")

		cfg, err := config.Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "highest_value_first", cfg.Annotate.Strategy)
		assert.Equal(t, 2, cfg.Check.Jobs)
	})

	t.Run("environment_overrides_files", func(t *testing.T) {
		opts := isolated(t)
		opts.SkipEnv = false
		writeFile(t, opts.UserFile, "[output]\nbackup = true\n")
		t.Setenv("SCHANNO_OUTPUT_BACKUP", "false")
		t.Setenv("SCHANNO_CHECK_FAIL_ON_PROBLEMS", "false")
		t.Setenv("SCHANNO_CHECK_JOBS", "3")

		cfg, err := config.Load(opts)
		require.NoError(t, err)
		assert.False(t, cfg.Output.Backup)
		assert.False(t, cfg.Check.FailOnProblems)
		assert.Equal(t, 3, cfg.Check.Jobs)
	})

	t.Run("overrides_win", func(t *testing.T) {
		opts := isolated(t)
		opts.SkipEnv = false
		t.Setenv("SCHANNO_OUTPUT_FORMAT", "yaml")
		opts.Overrides = map[string]interface{}{"output.format": "json"}

		cfg, err := config.Load(opts)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("loaded_file_is_logged", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", t.TempDir())
		var buf bytes.Buffer
		logging.SetupLoggerWithOutput(2, &buf)
		t.Cleanup(func() { logging.SetupLoggerWithOutput(0, io.Discard) })

		opts := isolated(t)
		writeFile(t, opts.UserFile, "[check]\njobs = 4\n")

		cfg, err := config.Load(opts)
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Check.Jobs)
		assert.Contains(t, buf.String(), "Loaded config file")
		assert.Contains(t, buf.String(), opts.UserFile)
	})

	t.Run("malformed_file", func(t *testing.T) {
		opts := isolated(t)
		writeFile(t, opts.UserFile, "[fix\nstrategy = ")

		_, err := config.Load(opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		valid  bool
	}{
		{"defaults", func(c *config.Config) {}, true},
		{"unknown_annotate_strategy", func(c *config.Config) { c.Annotate.Strategy = "random" }, false},
		{"unknown_fix_strategy", func(c *config.Config) { c.Fix.Strategy = "random" }, false},
		{"unknown_strategy_allowed_when_lenient", func(c *config.Config) {
			c.Engine.StrictStrategies = false
			c.Fix.Strategy = "random"
		}, true},
		{"bad_format", func(c *config.Config) { c.Output.Format = "html" }, false},
		{"empty_backup_suffix", func(c *config.Config) { c.Output.BackupSuffix = "" }, false},
		{"empty_suffix_without_backup", func(c *config.Config) {
			c.Output.Backup = false
			c.Output.BackupSuffix = ""
		}, true},
		{"negative_jobs", func(c *config.Config) { c.Check.Jobs = -1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Default()
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			}
		})
	}
}

func TestStrategySelection(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	s, err := cfg.AnnotateStrategy("")
	require.NoError(t, err)
	assert.Equal(t, schematic.AnnotateLeastCommonFirst, s)

	f, err := cfg.FixStrategy("next-available")
	require.NoError(t, err)
	assert.Equal(t, schematic.FixNextAvailable, f)

	_, err = cfg.FixStrategy("bogus")
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownStrategy))

	cfg.Engine.StrictStrategies = false
	f, err = cfg.FixStrategy("bogus")
	require.NoError(t, err)
	assert.Equal(t, schematic.FixStrategy("bogus"), f)
}

func TestTOML(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	out, err := cfg.TOML()
	require.NoError(t, err)
	assert.Contains(t, out, "[annotate]")
	assert.Contains(t, out, "least_common_first")
	assert.Contains(t, out, "backup_suffix")
	assert.Contains(t, config.DefaultsTOML(), "[engine]")
}
