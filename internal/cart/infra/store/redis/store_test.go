package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	s, err := Connect(ctx, Options{Addr: mr.Addr(), TTL: time.Hour})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	empty, err := s.Load(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, "c1", empty.ID)
	require.Empty(t, empty.Items)

	cart := domain.Cart{ID: "c1"}.
		WithAdded(domain.Product{ID: 7, Title: "shoe", Price: decimal.RequireFromString("99.9")}).
		WithAmount(7, 2)
	require.NoError(t, s.Save(ctx, cart))

	raw, err := mr.Get(store.Key("c1"))
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":7,"title":"shoe","price":"99.9","image":"","amount":2}]`, raw)
	require.Equal(t, time.Hour, mr.TTL(store.Key("c1")))

	got, err := s.Load(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, 2, got.AmountOf(7))

	mr.FastForward(2 * time.Hour)
	expired, err := s.Load(ctx, "c1")
	require.NoError(t, err)
	require.Empty(t, expired.Items)
}

func TestLoadRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	s := NewStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), time.Hour)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Save(ctx, domain.Cart{ID: "c1"}.WithAdded(domain.Product{ID: 1})))

	mr.FastForward(45 * time.Minute)
	_, err := s.Load(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, time.Hour, mr.TTL(store.Key("c1")))

	mr.FastForward(45 * time.Minute)
	got, err := s.Load(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, 1, got.AmountOf(1), "a cart that keeps being read stays alive")
}

func TestStoreCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set(store.Key("c1"), "not json"))

	s := NewStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), 0)
	_, err := s.Load(context.Background(), "c1")
	require.ErrorIs(t, err, store.ErrCorruptCart)
}

func TestConnectFails(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), Options{Addr: addr})
	require.Error(t, err)
}
