package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/schanno/pkg/errors"
	"github.com/arthur-debert/schanno/pkg/logging"
)

// Names of the files and variables read by Load
const (
	AppDirName      = "schanno"
	UserConfigName  = "config.toml"
	ProjectFileName = ".schanno.toml"
	EnvPrefix       = "SCHANNO_"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options controls where Load looks. Zero values select the standard
// locations.
type Options struct {
	// UserFile overrides the XDG user config path
	UserFile string
	// ProjectDir is searched for .schanno.toml, defaults to the working directory
	ProjectDir string
	// SkipEnv ignores SCHANNO_* variables
	SkipEnv bool
	// Overrides are applied last, keyed by dotted path ("fix.strategy")
	Overrides map[string]interface{}
}

// DefaultsTOML returns the embedded defaults file
func DefaultsTOML() string {
	return string(defaultConfig)
}

// UserConfigPath is $XDG_CONFIG_HOME/schanno/config.toml
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, UserConfigName)
}

// Default returns the embedded defaults only
func Default() (*Config, error) {
	return Load(Options{UserFile: "-", ProjectDir: "-", SkipEnv: true})
}

// Load builds the effective configuration. A UserFile or ProjectDir of "-"
// disables that layer.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	userFile := opts.UserFile
	if userFile == "" {
		userFile = UserConfigPath()
	}
	if err := loadFile(k, userFile); err != nil {
		return nil, err
	}

	if opts.ProjectDir != "-" {
		dir := opts.ProjectDir
		if dir == "" {
			dir = "."
		}
		if err := loadFile(k, filepath.Join(dir, ProjectFileName)); err != nil {
			return nil, err
		}
	}

	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("annotate", cfg.Annotate.Strategy).
		Str("fix", cfg.Fix.Strategy).
		Str("format", cfg.Output.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if path == "-" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Loaded config file")
	return nil
}

// envKey maps SCHANNO_CHECK_FAIL_ON_PROBLEMS to check.fail_on_problems.
// Only the first underscore separates the section from the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + rest
}
