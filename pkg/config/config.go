package config

import (
	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/schematic"
)

// Config is the effective configuration
type Config struct {
	Annotate Annotate `koanf:"annotate" toml:"annotate"`
	Fix      Fix      `koanf:"fix" toml:"fix"`
	Output   Output   `koanf:"output" toml:"output"`
	Check    Check    `koanf:"check" toml:"check"`
	Engine   Engine   `koanf:"engine" toml:"engine"`
}

type Annotate struct {
	Strategy string `koanf:"strategy" toml:"strategy"`
}

type Fix struct {
	Strategy string `koanf:"strategy" toml:"strategy"`
}

type Output struct {
	Format          string `koanf:"format" toml:"format"`
	Backup          bool   `koanf:"backup" toml:"backup"`
	BackupSuffix    string `koanf:"backup_suffix" toml:"backup_suffix"`
	DefaultFilename string `koanf:"default_filename" toml:"default_filename"`
}

type Check struct {
	Jobs           int  `koanf:"jobs" toml:"jobs"`
	FailOnProblems bool `koanf:"fail_on_problems" toml:"fail_on_problems"`
}

type Engine struct {
	StrictStrategies bool `koanf:"strict_strategies" toml:"strict_strategies"`
}

var outputFormats = map[string]bool{
	"auto": true, "term": true, "text": true, "json": true, "yaml": true, "toml": true, "xml": true,
}

// Validate checks values that the loaders cannot type-check
func (c *Config) Validate() error {
	if c.Engine.StrictStrategies {
		if _, err := schematic.ParseAnnotateStrategy(c.Annotate.Strategy); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid annotate.strategy").
				WithDetail("value", c.Annotate.Strategy)
		}
		if _, err := schematic.ParseFixStrategy(c.Fix.Strategy); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid fix.strategy").
				WithDetail("value", c.Fix.Strategy)
		}
	}
	if !outputFormats[c.Output.Format] {
		return errors.Newf(errors.ErrConfigValid, "invalid output.format %q", c.Output.Format)
	}
	if c.Output.Backup && c.Output.BackupSuffix == "" {
		return errors.New(errors.ErrConfigValid, "output.backup_suffix must not be empty when backups are enabled")
	}
	if c.Output.DefaultFilename == "" {
		return errors.New(errors.ErrConfigValid, "output.default_filename must not be empty")
	}
	if c.Check.Jobs < 0 {
		return errors.Newf(errors.ErrConfigValid, "check.jobs must be zero or positive, got %d", c.Check.Jobs)
	}
	return nil
}

// AnnotateStrategy returns the configured annotation strategy. With
// strict strategies off an unknown name is passed through as is.
func (c *Config) AnnotateStrategy(name string) (schematic.AnnotateStrategy, error) {
	if name == "" {
		name = c.Annotate.Strategy
	}
	if !c.Engine.StrictStrategies {
		if s, err := schematic.ParseAnnotateStrategy(name); err == nil {
			return s, nil
		}
		return schematic.AnnotateStrategy(name), nil
	}
	return schematic.ParseAnnotateStrategy(name)
}

// FixStrategy is like AnnotateStrategy for fix strategies
func (c *Config) FixStrategy(name string) (schematic.FixStrategy, error) {
	if name == "" {
		name = c.Fix.Strategy
	}
	if !c.Engine.StrictStrategies {
		if s, err := schematic.ParseFixStrategy(name); err == nil {
			return s, nil
		}
		return schematic.FixStrategy(name), nil
	}
	return schematic.ParseFixStrategy(name)
}
