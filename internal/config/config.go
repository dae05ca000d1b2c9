// Package config provides configuration management for romshelf using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/romshelf/internal/errors"
	"github.com/thoreinstein/romshelf/internal/paths"
)

// SettingsName is the base name of the settings file (settings.yaml).
// It differs from the archive's config.yaml so running inside an archive
// never picks the archive config up as settings.
const SettingsName = "settings"

// Config represents romshelf's own settings.
type Config struct {
	// ArchiveRoot is used when --root is not given.
	ArchiveRoot string `mapstructure:"archive_root" yaml:"archive_root"`

	// Color is one of auto, always, never.
	Color string `mapstructure:"color" yaml:"color"`

	// LogFormat is one of text, json.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Path returns the location of the settings file.
func Path() string {
	return filepath.Join(paths.ConfigDir(), SettingsName+".yaml")
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName(SettingsName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	// ROMSHELF_ARCHIVE_ROOT, ROMSHELF_COLOR, ROMSHELF_LOG_FORMAT
	viper.SetEnvPrefix("ROMSHELF")
	viper.AutomaticEnv()

	viper.SetDefault("archive_root", "")
	viper.SetDefault("color", "auto")
	viper.SetDefault("log_format", "text")
}

// Load reads the settings file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default location and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load: defaults are fine
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "settings file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading settings file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling settings")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating settings")
	}

	return &cfg, nil
}
