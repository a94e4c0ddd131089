package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store"
)

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cart.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)

	empty, err := s.Load(ctx, "local")
	require.NoError(t, err)
	require.Empty(t, empty.Items)

	cart := domain.Cart{ID: "local"}.
		WithAdded(domain.Product{ID: 1, Title: "a", Price: decimal.RequireFromString("179.9")}).
		WithAdded(domain.Product{ID: 2, Title: "b", Price: decimal.RequireFromString("139.9")})
	require.NoError(t, s.Save(ctx, cart))
	require.NoError(t, s.Save(ctx, cart.WithAmount(2, 3)))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load(ctx, "local")
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	require.Equal(t, int64(1), got.Items[0].ID)
	require.Equal(t, 3, got.AmountOf(2))
}

func TestStoreCorruptValue(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, filepath.Join(t.TempDir(), "cart.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.db.ExecContext(ctx, `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, 0)`, store.Key("bad"), "{")
	require.NoError(t, err)

	_, err = s.Load(ctx, "bad")
	require.ErrorIs(t, err, store.ErrCorruptCart)
}
