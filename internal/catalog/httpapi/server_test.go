package httpapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/catalogapi"
	"github.com/dwikikusuma/rocketshoes/internal/catalog/app"
	"github.com/dwikikusuma/rocketshoes/internal/catalog/domain"
	"github.com/dwikikusuma/rocketshoes/internal/catalog/infra/memory"
)

func newApp(t *testing.T) *Server {
	t.Helper()
	repo, err := memory.Load("")
	require.NoError(t, err)
	return NewServer(app.NewService(repo, repo), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRoutes(t *testing.T) {
	s := newApp(t)

	cases := []struct {
		path string
		want int
	}{
		{"/products", http.StatusOK},
		{"/products?q=adidas&_limit=1", http.StatusOK},
		{"/products?_limit=x", http.StatusBadRequest},
		{"/products/3", http.StatusOK},
		{"/products/99", http.StatusNotFound},
		{"/products/abc", http.StatusBadRequest},
		{"/stock/2", http.StatusOK},
		{"/stock/0", http.StatusBadRequest},
		{"/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, tc.path, nil), -1)
		require.NoError(t, err)
		require.Equal(t, tc.want, resp.StatusCode, tc.path)
		_ = resp.Body.Close()
	}
}

// The cart's catalog client must understand what this server returns.
func TestCartClientCompatibility(t *testing.T) {
	s := newApp(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	fa := s.App()
	go func() { _ = fa.Listener(ln) }()
	t.Cleanup(func() { _ = fa.Shutdown() })

	client := catalogapi.NewClient("http://"+ln.Addr().String(), 2*time.Second, nil)
	ctx := context.Background()

	p, err := client.GetProduct(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "139.9", p.Price.String())

	st, err := client.GetStock(ctx, 6)
	require.NoError(t, err)
	require.Equal(t, 10, st.Amount)

	ps, err := client.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, ps, 6)

	_, err = client.GetStock(ctx, 42)
	require.ErrorIs(t, err, catalogapi.ErrStockNotFound)
}

func TestClientListsWholeCatalog(t *testing.T) {
	var seed memory.Seed
	for i := 1; i <= 25; i++ {
		seed.Products = append(seed.Products, domain.Product{ID: int64(i), Title: fmt.Sprintf("Tênis %d", i)})
	}
	repo, err := memory.NewRepo(seed)
	require.NoError(t, err)
	s := NewServer(app.NewService(repo, repo), slog.New(slog.NewTextHandler(io.Discard, nil)))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	fa := s.App()
	go func() { _ = fa.Listener(ln) }()
	t.Cleanup(func() { _ = fa.Shutdown() })

	client := catalogapi.NewClient("http://"+ln.Addr().String(), 2*time.Second, nil)
	ps, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 25)
}
