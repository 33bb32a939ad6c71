// Package config loads service configuration from the environment with
// sane development defaults.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr     string `mapstructure:"addr"`
	LogLevel string `mapstructure:"log_level"`

	CatalogURL     string        `mapstructure:"catalog_url"`
	CatalogTimeout time.Duration `mapstructure:"catalog_timeout"`

	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsToken   string `mapstructure:"metrics_token"`

	CheckoutLimit       int           `mapstructure:"checkout_limit"`
	CheckoutLimitWindow time.Duration `mapstructure:"checkout_limit_window"`
}

// Load reads STOREFRONT_* environment variables over the defaults, e.g.
// STOREFRONT_ADDR=:9090 overrides addr.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("catalog_url", "https://fakestoreapi.com/products")
	v.SetDefault("catalog_timeout", 10*time.Second)
	v.SetDefault("metrics_enabled", false)
	v.SetDefault("metrics_token", "")
	v.SetDefault("checkout_limit", 10)
	v.SetDefault("checkout_limit_window", time.Minute)

	v.SetEnvPrefix("storefront")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
