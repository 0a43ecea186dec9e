package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gutter/pkg/errors"
	"github.com/arthur-debert/gutter/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable gutter reads
const EnvPrefix = "GUTTER_"

// configFileNames are tried in order inside the user config directory
var configFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config file path. When empty the XDG config
	// directory is searched.
	ConfigFile string
	// Overrides are applied last, typically from command line flags
	Overrides map[string]interface{}
}

// Load builds the effective configuration. Layers, later wins: embedded
// defaults, user config file, GUTTER_* environment, overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. User config file
	path, err := resolveConfigPath(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = path

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("style", cfg.Style).
		Str("decorations", cfg.Decorations).
		Str("format", cfg.Format).
		Msg("Configuration loaded")
	return &cfg, nil
}

// UserConfigDir returns the directory searched for user config files
func UserConfigDir() string {
	// Pick up XDG_* changes made after process start
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, logging.AppName)
}

func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", explicit).
				WithDetail("path", explicit)
		}
		return explicit, nil
	}

	dir := UserConfigDir()
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func validate(cfg *Config) error {
	if _, err := cfg.StyleKeywords(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid style setting")
	}
	if _, err := cfg.DecorationMode(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid decorations setting")
	}
	if _, err := cfg.OutputFormat(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid format setting")
	}
	return nil
}
