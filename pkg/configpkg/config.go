// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver       string `mapstructure:"DB_DRIVER"`
	DBSource       string `mapstructure:"DB_SOURCE"`
	Environment    string `mapstructure:"GO_ENV"`
	TechnicianCode string `mapstructure:"TECHNICIAN_CODE"`
	SeedDemoData   bool   `mapstructure:"SEED_DEMO_DATA"`
	HistorySize    int32  `mapstructure:"HISTORY_SIZE"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "./data/atm.db")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("TECHNICIAN_CODE", "TECH123")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("HISTORY_SIZE", 5)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if c.HistorySize <= 0 {
		return c, errors.Errorf("HISTORY_SIZE must be positive, got %d", c.HistorySize)
	}

	return c, nil
}
