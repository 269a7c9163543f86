// Package config loads application configuration from file and
// environment and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/grocery-cli/internal/recipe"
)

// Config holds the full application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	List   ListConfig   `yaml:"list" mapstructure:"list"`
	Units  UnitsConfig  `yaml:"units" mapstructure:"units"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the recipe database backend.
type StoreConfig struct {
	Driver      string            `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string            `yaml:"database_url" mapstructure:"database_url"`
	Pool        recipe.PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port          int     `yaml:"port" mapstructure:"port"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// ListConfig configures shopping-list aggregation.
type ListConfig struct {
	FanOut int `yaml:"fan_out" mapstructure:"fan_out"`
}

// UnitsConfig configures the display-unit promotion policy.
type UnitsConfig struct {
	PolicyPath string `yaml:"policy_path" mapstructure:"policy_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GROCERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "grocery.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_per_second", 10)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("list.fan_out", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
