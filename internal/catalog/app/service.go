package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/rocketshoes/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const maxLimit = 100

type Service struct {
	products ProductRepo
	stock    StockRepo
}

func NewService(products ProductRepo, stock StockRepo) *Service {
	return &Service{
		products: products,
		stock:    stock,
	}
}

func (s *Service) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.Get(ctx, id)
}

// ListProducts returns every matching product when limit is zero or less,
// like json-server without _limit. A positive limit is capped at maxLimit.
func (s *Service) ListProducts(ctx context.Context, query string, limit int) ([]domain.Product, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.products.List(ctx, strings.TrimSpace(query), limit)
}

func (s *Service) GetStock(ctx context.Context, productID int64) (domain.Stock, error) {
	if productID <= 0 {
		return domain.Stock{}, ErrInvalidInput
	}
	return s.stock.GetStock(ctx, productID)
}
