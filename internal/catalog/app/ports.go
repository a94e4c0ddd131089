package app

import (
	"context"

	"github.com/dwikikusuma/rocketshoes/internal/catalog/domain"
)

type ProductRepo interface {
	Get(ctx context.Context, id int64) (domain.Product, error)
	List(ctx context.Context, query string, limit int) ([]domain.Product, error)
}

type StockRepo interface {
	GetStock(ctx context.Context, productID int64) (domain.Stock, error)
}
