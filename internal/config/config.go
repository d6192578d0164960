package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Output formats understood by the report writers.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Environment       string `mapstructure:"ENVIRONMENT"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	HTTPServerAddress string `mapstructure:"HTTP_SERVER_ADDRESS"`
	OutputFormat      string `mapstructure:"OUTPUT_FORMAT"`
	DataOnly          bool   `mapstructure:"DATA_ONLY"`
}

var defaults = map[string]any{
	"ENVIRONMENT":         "production",
	"LOG_LEVEL":           "info",
	"HTTP_SERVER_ADDRESS": "localhost:8080",
	"OUTPUT_FORMAT":       FormatText,
	"DATA_ONLY":           false,
}

// LoadConfig reads app.env from path, if there is one, and lets
// environment variables override it.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// without defaults, Unmarshal does not see keys that are only in the environment
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			err = fmt.Errorf("cannot read config: %w", err)
			return
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		err = fmt.Errorf("cannot decode config: %w", err)
		return
	}

	err = config.Validate()
	return
}

// Validate checks the values that have a fixed set of choices.
func (config *Config) Validate() error {
	switch config.OutputFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown output format %q", config.OutputFormat)
	}
	return nil
}
