// Package driver opens the cart store selected by configuration.
package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/dwikikusuma/rocketshoes/internal/cart/app"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store/memory"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store/redis"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store/sqlite"
	"github.com/dwikikusuma/rocketshoes/pkg/config"
)

type Store interface {
	app.CartStore
	io.Closer
}

type nopCloser struct{ *memory.Store }

func (nopCloser) Close() error { return nil }

func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return nopCloser{memory.NewStore()}, nil
	case config.StoreRedis:
		return redis.Connect(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CartTTL,
		})
	case config.StoreSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
