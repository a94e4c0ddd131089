package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/rocketshoes/internal/catalog/app"
	"github.com/dwikikusuma/rocketshoes/internal/catalog/domain"
)

func TestLoadDefaultSeed(t *testing.T) {
	ctx := context.Background()
	r, err := Load("")
	require.NoError(t, err)

	ps, err := r.List(ctx, "", 100)
	require.NoError(t, err)
	require.Len(t, ps, 6)
	require.Equal(t, int64(1), ps[0].ID)
	require.Equal(t, int64(4), ps[5].ID, "seed order is kept")

	st, err := r.GetStock(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 1, st.Amount)

	_, err = r.Get(ctx, 99)
	require.ErrorIs(t, err, app.ErrNotFound)
	_, err = r.GetStock(ctx, 99)
	require.ErrorIs(t, err, app.ErrNotFound)
}

func TestListFilterAndLimit(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)

	ps, err := r.List(context.Background(), "adidas", 100)
	require.NoError(t, err)
	require.Len(t, ps, 2)

	ps, err = r.List(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, ps, 2)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[{"id":9,"title":"x","price":"1.5","image":""}],"stock":[{"id":9,"amount":0}]}`), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	p, err := r.Get(context.Background(), 9)
	require.NoError(t, err)
	require.Equal(t, "1.5", p.Price.String())

	st, err := r.GetStock(context.Background(), 9)
	require.NoError(t, err)
	require.Zero(t, st.Amount)
}

func TestNewRepoRejectsBadSeed(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"products":[{"id":1},{"id":1}]}`), 0o600))
	_, err = Load(path)
	require.Error(t, err)
}

func largeSeed(n int) Seed {
	var seed Seed
	for i := 1; i <= n; i++ {
		seed.Products = append(seed.Products, domain.Product{ID: int64(i), Title: fmt.Sprintf("Tênis %d", i)})
		seed.Stock = append(seed.Stock, domain.Stock{ID: int64(i), Amount: 1})
	}
	return seed
}

func TestListWithoutLimitReturnsEverything(t *testing.T) {
	r, err := NewRepo(largeSeed(25))
	require.NoError(t, err)
	svc := app.NewService(r, r)
	ctx := context.Background()

	ps, err := svc.ListProducts(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, ps, 25)
	require.Equal(t, int64(25), ps[24].ID)

	ps, err = svc.ListProducts(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, ps, 10)
}
