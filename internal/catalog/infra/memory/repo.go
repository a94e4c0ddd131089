// Package memory serves the catalog from a json-server style seed document
// held in memory.
package memory

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dwikikusuma/rocketshoes/internal/catalog/app"
	"github.com/dwikikusuma/rocketshoes/internal/catalog/domain"
)

//go:embed seed.json
var defaultSeed []byte

type Seed struct {
	Products []domain.Product `json:"products"`
	Stock    []domain.Stock   `json:"stock"`
}

// Repo implements both app.ProductRepo and app.StockRepo. Products are listed
// in seed order. A Repo is read-only once built.
type Repo struct {
	products []domain.Product
	byID     map[int64]int
	stock    map[int64]int
}

func NewRepo(seed Seed) (*Repo, error) {
	r := &Repo{
		products: make([]domain.Product, 0, len(seed.Products)),
		byID:     make(map[int64]int, len(seed.Products)),
		stock:    make(map[int64]int, len(seed.Stock)),
	}
	for _, p := range seed.Products {
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
	}
	for _, s := range seed.Stock {
		if s.Amount < 0 {
			return nil, fmt.Errorf("negative stock for product %d", s.ID)
		}
		r.stock[s.ID] = s.Amount
	}
	return r, nil
}

// Load reads the seed at path, or the embedded default when path is empty.
func Load(path string) (*Repo, error) {
	raw := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed: %w", err)
		}
		raw = b
	}

	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return NewRepo(seed)
}

func (r *Repo) Get(_ context.Context, id int64) (domain.Product, error) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Product{}, app.ErrNotFound
	}
	return r.products[idx], nil
}

// List returns every match when limit is zero or less.
func (r *Repo) List(_ context.Context, query string, limit int) ([]domain.Product, error) {
	q := strings.ToLower(query)
	size := len(r.products)
	if limit > 0 {
		size = min(limit, size)
	}
	out := make([]domain.Product, 0, size)
	for _, p := range r.products {
		if q != "" && !strings.Contains(strings.ToLower(p.Title), q) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *Repo) GetStock(_ context.Context, productID int64) (domain.Stock, error) {
	amount, ok := r.stock[productID]
	if !ok {
		return domain.Stock{}, app.ErrNotFound
	}
	return domain.Stock{ID: productID, Amount: amount}, nil
}
