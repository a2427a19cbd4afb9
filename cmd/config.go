package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"aaschema/internal/format"
	"aaschema/internal/schema"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// GetFormat returns the configured output format (Flag > Env > Config > Default).
func GetFormat() (format.Format, error) {
	return format.ParseFormat(viper.GetString("settings.format"))
}

// GetTables returns the built-in tables extended with tables.extra, if set.
func GetTables() (schema.Tables, error) {
	return schema.LoadTables(viper.GetString("tables.extra"))
}
