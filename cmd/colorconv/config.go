package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFileName is the config file name searched for, without
	// extension.
	DefaultConfigFileName = "colorconv"

	envPrefix = "COLORCONV"
)

// Config holds the colorconv configuration.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format    string `mapstructure:"format"`    // text, json or yaml
	Precision int    `mapstructure:"precision"` // decimals in text output
	Lang      string `mapstructure:"lang"`      // BCP 47 tag for number formatting
	Preview   bool   `mapstructure:"preview"`   // color blocks on capable terminals
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
}

// CacheConfig sizes the luminance cache of the evaluator.
type CacheConfig struct {
	Capacity int           `mapstructure:"capacity"` // entries per shard
	TTL      time.Duration `mapstructure:"ttl"`
}

// LoadConfig loads configuration into v from defaults, the config file,
// COLORCONV_* environment variables and bound flags, in increasing order of
// priority.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, DefaultConfigFileName))
		}
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file; defaults, env and flags only.
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "text")
	v.SetDefault("output.precision", 3)
	v.SetDefault("output.lang", "en")
	v.SetDefault("output.preview", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	v.SetDefault("cache.capacity", 0) // library default
	v.SetDefault("cache.ttl", time.Duration(0))
}

// Validate checks values that cannot be checked by their type.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("invalid output format %q (want text, json or yaml)", c.Output.Format)
	}
	if c.Output.Precision < 0 || c.Output.Precision > 17 {
		return fmt.Errorf("invalid precision %d (want 0-17)", c.Output.Precision)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.Logging.Format)
	}
	return nil
}
