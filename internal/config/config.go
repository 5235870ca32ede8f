// Package config provides Viper-based configuration for the tool itself:
// logging behavior and HTTP client settings. Credentials live in burp.conf
// and are handled by the params package, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultDomain is the canonical hostname of the AUR.
const DefaultDomain = "aur.archlinux.org"

var once sync.Once

// Config represents the application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	AUR struct {
		Domain         string `mapstructure:"domain"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"aur"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then BURP_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.burp")
	v.AddConfigPath(".burp")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BURP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("aur.domain", DefaultDomain)
	v.SetDefault("aur.timeout_seconds", 300)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format %q (must be 'text' or 'json')", config.Log.Format)
	}
	if config.AUR.Domain == "" {
		return fmt.Errorf("aur.domain must not be empty")
	}
	if config.AUR.TimeoutSeconds <= 0 {
		return fmt.Errorf("aur.timeout_seconds must be positive")
	}
	return nil
}

// ConfigureLogging sets up a logrus logger from the configuration.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are fine; environment variables are used as-is.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}
