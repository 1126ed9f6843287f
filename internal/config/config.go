// Package config loads sales-metrics-service settings from an optional YAML
// file and SALES_METRICS_* environment variables. Environment variables take
// precedence over the file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SALES_METRICS"

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Log       LogConfig       `mapstructure:"log"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// BodyLimit caps request bodies in bytes, mostly for /sales/analyze.
	BodyLimit int `mapstructure:"body_limit"`
}

type PostgresConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// AnalyticsConfig holds the thresholds of the churn, staleness, product and
// anomaly views.
type AnalyticsConfig struct {
	ChurnMinOrders      int `mapstructure:"churn_min_orders"`
	ChurnInactivityDays int `mapstructure:"churn_inactivity_days"`
	StaleFloorDays      int `mapstructure:"stale_floor_days"`
	StaleMediumDays     int `mapstructure:"stale_medium_days"`
	StaleHighDays       int `mapstructure:"stale_high_days"`
	ProductLimit        int `mapstructure:"product_limit"`
	AnomalyMinOrders    int `mapstructure:"anomaly_min_orders"`
	// MaxBatch bounds the records accepted by /sales/analyze; 0 disables it.
	MaxBatch int `mapstructure:"max_batch"`
}

func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			BodyLimit:       8 * 1024 * 1024,
		},
		Postgres: PostgresConfig{
			MaxOpenConns:    20,
			MaxIdleConns:    10,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
		Analytics: AnalyticsConfig{
			ChurnMinOrders:      3,
			ChurnInactivityDays: 30,
			StaleFloorDays:      30,
			StaleMediumDays:     60,
			StaleHighDays:       90,
			ProductLimit:        100,
			AnomalyMinOrders:    50,
			MaxBatch:            50000,
		},
	}
}

// Load reads configFile when given, otherwise ./sales-metrics.yaml if it
// exists, then applies environment overrides such as
// SALES_METRICS_POSTGRES_DSN or SALES_METRICS_HTTP_ADDR. POSTGRES_DSN is
// honoured as well.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())
	if err := v.BindEnv("postgres.dsn", envPrefix+"_POSTGRES_DSN", "POSTGRES_DSN"); err != nil {
		return nil, fmt.Errorf("bind postgres dsn: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("sales-metrics")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during
// Unmarshal.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.read_timeout", d.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", d.HTTP.WriteTimeout)
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout)
	v.SetDefault("http.body_limit", d.HTTP.BodyLimit)

	v.SetDefault("postgres.dsn", d.Postgres.DSN)
	v.SetDefault("postgres.max_open_conns", d.Postgres.MaxOpenConns)
	v.SetDefault("postgres.max_idle_conns", d.Postgres.MaxIdleConns)
	v.SetDefault("postgres.conn_max_lifetime", d.Postgres.ConnMaxLifetime)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.pretty", d.Log.Pretty)

	v.SetDefault("analytics.churn_min_orders", d.Analytics.ChurnMinOrders)
	v.SetDefault("analytics.churn_inactivity_days", d.Analytics.ChurnInactivityDays)
	v.SetDefault("analytics.stale_floor_days", d.Analytics.StaleFloorDays)
	v.SetDefault("analytics.stale_medium_days", d.Analytics.StaleMediumDays)
	v.SetDefault("analytics.stale_high_days", d.Analytics.StaleHighDays)
	v.SetDefault("analytics.product_limit", d.Analytics.ProductLimit)
	v.SetDefault("analytics.anomaly_min_orders", d.Analytics.AnomalyMinOrders)
	v.SetDefault("analytics.max_batch", d.Analytics.MaxBatch)
}

// Validate checks the settings the serve command needs.
func (c *Config) Validate() error {
	if c.Postgres.DSN == "" {
		return fmt.Errorf("postgres dsn is required")
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http addr is required")
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("http shutdown_timeout must be positive")
	}
	if c.Postgres.MaxOpenConns < 0 || c.Postgres.MaxIdleConns < 0 {
		return fmt.Errorf("postgres pool sizes must not be negative")
	}
	if c.Postgres.MaxOpenConns > 0 && c.Postgres.MaxIdleConns > c.Postgres.MaxOpenConns {
		return fmt.Errorf("postgres max_idle_conns must be <= max_open_conns")
	}
	if c.Analytics.MaxBatch < 0 {
		return fmt.Errorf("analytics max_batch must not be negative")
	}
	return nil
}
