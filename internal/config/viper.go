package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Sheets struct {
		SpreadsheetID   string `mapstructure:"spreadsheet_id" yaml:"spreadsheet_id"`
		CredentialsPath string `mapstructure:"credentials_path" yaml:"credentials_path"`
	} `mapstructure:"sheets" yaml:"sheets"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then CATAT_-prefixed environment
// variables, with the credential variables bound to their legacy names.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.catat-duit")
	v.AddConfigPath(".catat-duit")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CATAT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// Credentials and logging keep their unprefixed historical names.
	if err := v.BindEnv("log.level", "LOG_LEVEL"); err != nil {
		fmt.Printf("Warning: failed to bind LOG_LEVEL environment variable: %v\n", err)
	}
	if err := v.BindEnv("log.format", "LOG_FORMAT"); err != nil {
		fmt.Printf("Warning: failed to bind LOG_FORMAT environment variable: %v\n", err)
	}
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}
	if err := v.BindEnv("sheets.spreadsheet_id", "SPREADSHEET_ID"); err != nil {
		fmt.Printf("Warning: failed to bind SPREADSHEET_ID environment variable: %v\n", err)
	}
	if err := v.BindEnv("sheets.credentials_path", "GOOGLE_CREDENTIALS_PATH"); err != nil {
		fmt.Printf("Warning: failed to bind GOOGLE_CREDENTIALS_PATH environment variable: %v\n", err)
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

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("sheets.credentials_path", "credentials.json")

	v.SetDefault("categories.file", "categories.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	return nil
}

// ConfigureLoggingFromConfig applies the resolved log settings to the shared
// logger, so a config.yaml log section takes effect everywhere the logger
// has already been handed out.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}
