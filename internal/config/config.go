package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API APIConfig
	Log LogConfig
}

// APIConfig holds remote service settings.
type APIConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	AuthTimeoutSecs    int    `mapstructure:"auth_timeout_secs"`
	AnalyzeTimeoutSecs int    `mapstructure:"analyze_timeout_secs"`
}

// LogConfig holds debug log settings. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix NOTICELENS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "https://web-production-21f8.up.railway.app")
	v.SetDefault("api.auth_timeout_secs", 15)
	v.SetDefault("api.analyze_timeout_secs", 90)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "noticelens", "noticelens.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NOTICELENS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "noticelens"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NOTICELENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.AuthTimeoutSecs <= 0 {
		c.API.AuthTimeoutSecs = 15
	}
	if c.API.AnalyzeTimeoutSecs <= 0 {
		c.API.AnalyzeTimeoutSecs = 90
	}
	return c, nil
}
