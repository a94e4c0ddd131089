package app

import (
	"context"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

// CartStore persists a whole cart. Load returns an empty cart when nothing is stored.
type CartStore interface {
	Load(ctx context.Context, cartID string) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
}

type StockReader interface {
	GetStock(ctx context.Context, productID int64) (domain.Stock, error)
}

type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}
