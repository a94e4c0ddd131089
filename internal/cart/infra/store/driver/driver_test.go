package driver

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/dwikikusuma/rocketshoes/pkg/config"
)

func TestOpenEachDriver(t *testing.T) {
	mr := miniredis.RunT(t)

	cfgs := map[string]config.Config{
		config.StoreMemory: {StoreDriver: config.StoreMemory},
		config.StoreRedis:  {StoreDriver: config.StoreRedis, RedisAddr: mr.Addr()},
		config.StoreSQLite: {StoreDriver: config.StoreSQLite, SQLitePath: filepath.Join(t.TempDir(), "cart.db")},
	}

	for name, cfg := range cfgs {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s, err := Open(ctx, cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })

			cart := domain.Cart{ID: "c1"}.WithAdded(domain.Product{ID: 5})
			require.NoError(t, s.Save(ctx, cart))

			got, err := s.Load(ctx, "c1")
			require.NoError(t, err)
			require.Equal(t, 1, got.AmountOf(5))
		})
	}

	_, err := Open(context.Background(), config.Config{StoreDriver: "floppy"})
	require.Error(t, err)
}
