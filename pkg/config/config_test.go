package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.AppEnv)
	require.Equal(t, 8080, cfg.HTTPPort)
	require.Equal(t, StoreMemory, cfg.StoreDriver)
	require.Equal(t, 10*time.Second, cfg.HTTPClientTimeout)
	require.Empty(t, cfg.KafkaBrokers)
	require.Zero(t, cfg.CartTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", " Redis ")
	t.Setenv("CART_TTL", "72h")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CATALOG_API_URL", "http://catalog:3333")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.HTTPPort)
	require.Equal(t, StoreRedis, cfg.StoreDriver)
	require.Equal(t, 72*time.Hour, cfg.CartTTL)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, "http://catalog:3333", cfg.CatalogAPIURL)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "localstorage")

	_, err := load(viper.New())
	require.Error(t, err)
}
