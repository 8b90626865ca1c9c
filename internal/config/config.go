package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Bind    BindConfig    `mapstructure:"bind"`
	Release ReleaseConfig `mapstructure:"release"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BindConfig controls software discovery for bind modules
type BindConfig struct {
	// ImplicitPackages holds entries of the shape "~name==value", e.g.
	// "~platform==linux". Only the name part matters for variant filtering.
	ImplicitPackages   []string `mapstructure:"implicit_packages"`
	UseFolderVersions  bool     `mapstructure:"use_folder_versions"`
	FolderVersionsRoot string   `mapstructure:"folder_versions_root"`
	Debug              bool     `mapstructure:"debug"`
}

// ReleaseConfig contains release-path configuration
type ReleaseConfig struct {
	PackagesPath  string   `mapstructure:"packages_path"`
	PackagesRoot  string   `mapstructure:"packages_root"`
	PackagesTypes []string `mapstructure:"packages_types"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "rez"))
	}
	viper.AddConfigPath(".")

	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("REZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Bind.FolderVersionsRoot = expandPath(cfg.Bind.FolderVersionsRoot)
	cfg.Release.PackagesPath = expandPath(cfg.Release.PackagesPath)
	cfg.Release.PackagesRoot = expandPath(cfg.Release.PackagesRoot)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("bind.implicit_packages", []string{})
	viper.SetDefault("bind.use_folder_versions", false)
	viper.SetDefault("bind.folder_versions_root", "")
	viper.SetDefault("bind.debug", false)

	viper.SetDefault("release.packages_path", "")
	viper.SetDefault("release.packages_root", "")
	viper.SetDefault("release.packages_types", []string{})

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.file", "")
	viper.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	path = os.ExpandEnv(path)

	return path
}
