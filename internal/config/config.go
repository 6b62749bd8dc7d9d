// Package config loads runtime settings from config.yaml plus STOCKLEDGER_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Data struct {
		InventoryFile    string `mapstructure:"inventory_file"`
		TransactionsFile string `mapstructure:"transactions_file"`
	} `mapstructure:"data"`
	Report struct {
		OutputFile string `mapstructure:"output_file"`
	} `mapstructure:"report"`
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Auth struct {
		JWTSecret         string `mapstructure:"jwt_secret"`
		AdminUsername     string `mapstructure:"admin_username"`
		AdminPasswordHash string `mapstructure:"admin_password_hash"`
	} `mapstructure:"auth"`
	RateLimit struct {
		RPS   float64 `mapstructure:"rps"`
		Burst int     `mapstructure:"burst"`
	} `mapstructure:"rate_limit"`
}

// Load reads configuration from the given directory (or the working directory
// when empty). A missing config file is fine; defaults and environment
// variables still apply.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir == "" {
		dir = "."
	}
	v.AddConfigPath(dir)

	v.SetDefault("data.inventory_file", "data/inventory.csv")
	v.SetDefault("data.transactions_file", "data/transactions.csv")
	v.SetDefault("report.output_file", "output/report.json")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("auth.admin_username", "admin")
	v.SetDefault("rate_limit.rps", 1.0)
	v.SetDefault("rate_limit.burst", 3)

	v.SetEnvPrefix("STOCKLEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
