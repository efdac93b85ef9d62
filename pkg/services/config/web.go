package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// WebConfig holds the web entrypoint settings. Host and Port may be left
// empty and resolved from the environment instead.
type WebConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Profiles string `mapstructure:"profiles"`
}

// LoadWebConfig reads a YAML config file into a WebConfig.
func LoadWebConfig(path string) (*WebConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg WebConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse web config: %w", err)
	}
	return &cfg, nil
}
