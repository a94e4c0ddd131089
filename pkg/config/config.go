package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort    int
	CatalogPort int

	CatalogAPIURL     string
	CatalogSeedPath   string
	HTTPClientTimeout time.Duration

	StoreDriver   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartTTL       time.Duration
	SQLitePath    string

	KafkaBrokers []string

	CurrencySymbol   string
	QuoteConcurrency int
}

// Load reads a .env file when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetDefault("app_env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("http_port", 8080)
	v.SetDefault("catalog_port", 3333)
	v.SetDefault("catalog_api_url", "http://localhost:3333")
	v.SetDefault("catalog_seed_path", "")
	v.SetDefault("http_client_timeout", "10s")
	v.SetDefault("store_driver", StoreMemory)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cart_ttl", "0s")
	v.SetDefault("sqlite_path", "rocketshoes/cart.db")
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("currency_symbol", "R$")
	v.SetDefault("quote_concurrency", 10)

	v.AutomaticEnv()

	cfg := Config{
		AppEnv:            v.GetString("app_env"),
		LogLevel:          v.GetString("log_level"),
		HTTPPort:          v.GetInt("http_port"),
		CatalogPort:       v.GetInt("catalog_port"),
		CatalogAPIURL:     v.GetString("catalog_api_url"),
		CatalogSeedPath:   v.GetString("catalog_seed_path"),
		HTTPClientTimeout: v.GetDuration("http_client_timeout"),
		StoreDriver:       strings.ToLower(strings.TrimSpace(v.GetString("store_driver"))),
		RedisAddr:         v.GetString("redis_addr"),
		RedisPassword:     v.GetString("redis_password"),
		RedisDB:           v.GetInt("redis_db"),
		CartTTL:           v.GetDuration("cart_ttl"),
		SQLitePath:        v.GetString("sqlite_path"),
		KafkaBrokers:      splitList(v.GetString("kafka_brokers")),
		CurrencySymbol:    v.GetString("currency_symbol"),
		QuoteConcurrency:  v.GetInt("quote_concurrency"),
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.HTTPClientTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_CLIENT_TIMEOUT must be positive, got %s", cfg.HTTPClientTimeout)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
