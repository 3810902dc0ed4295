// Package config provides configuration management for the fel4cfg CLI
// using Viper. It covers the tool's own settings (default manifest path,
// default build profile); the fel4 manifest itself is handled by pkg/fel4.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName is the application name used for config file naming.
const AppName = "fel4cfg"

// Config represents the top-level configuration structure.
type Config struct {
	// Manifest is the default path of the fel4 manifest to operate on.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	// DefaultProfile is the build profile used when --profile is not given.
	DefaultProfile string `mapstructure:"default_profile" yaml:"default_profile"`
}

// Init initializes Viper with defaults and search paths.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("FEL4CFG")
	viper.AutomaticEnv()

	viper.SetDefault("manifest", "fel4.toml")
	viper.SetDefault("default_profile", "debug")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back
// to defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Only an error when the user asked for a specific file
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration with the built-in defaults, without
// touching the filesystem.
func Default() *Config {
	return &Config{
		Manifest:       "fel4.toml",
		DefaultProfile: "debug",
	}
}
