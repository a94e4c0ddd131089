package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Notifier Notifier
	Events   EventPublisher
	Logger   *slog.Logger
	// MaxConcurrent bounds the stock reads issued by Quote.
	MaxConcurrent int
	Now           func() time.Time
}

type Service struct {
	store   CartStore
	catalog CatalogReader
	stock   StockReader

	notifier      Notifier
	events        EventPublisher
	log           *slog.Logger
	maxConcurrent int
	now           func() time.Time

	locks *cartLocks
}

func NewService(store CartStore, catalog CatalogReader, stock StockReader, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = LogNotifier{Log: opts.Logger}
	}
	if opts.Events == nil {
		opts.Events = NopPublisher{}
	}
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 10
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Service{
		store:         store,
		catalog:       catalog,
		stock:         stock,
		notifier:      opts.Notifier,
		events:        opts.Events,
		log:           opts.Logger,
		maxConcurrent: opts.MaxConcurrent,
		now:           opts.Now,
		locks:         newCartLocks(),
	}
}

func (s *Service) Cart(ctx context.Context, cartID string) (domain.Cart, error) {
	if strings.TrimSpace(cartID) == "" {
		return domain.Cart{}, s.fail(ctx, cartID, domain.OpLoad, fmt.Errorf("%w: empty cart id", ErrInvalidInput))
	}

	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.Cart{}, s.fail(ctx, cartID, domain.OpLoad, fmt.Errorf("load cart: %w", err))
	}
	return cart, nil
}

// AddProduct puts one more unit of productID in the cart, provided the stock
// exceeds what the cart already holds.
func (s *Service) AddProduct(ctx context.Context, cartID string, productID int64) (domain.Cart, error) {
	if err := validate(cartID, productID); err != nil {
		return domain.Cart{}, s.fail(ctx, cartID, domain.OpAdd, err)
	}

	return s.mutate(ctx, cartID, func() (domain.Cart, *domain.Event, error) {
		var (
			stock   domain.Stock
			product domain.Product
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			st, err := s.stock.GetStock(gctx, productID)
			if err != nil {
				return fmt.Errorf("get stock %d: %w", productID, err)
			}
			stock = st
			return nil
		})
		g.Go(func() error {
			p, err := s.catalog.GetProduct(gctx, productID)
			if err != nil {
				return fmt.Errorf("get product %d: %w", productID, err)
			}
			product = p
			return nil
		})
		if err := g.Wait(); err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpAdd, err)
		}

		cart, err := s.store.Load(ctx, cartID)
		if err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpAdd, fmt.Errorf("load cart: %w", err))
		}

		current := cart.AmountOf(productID)
		if stock.Amount <= current {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpAdd,
				fmt.Errorf("%w: product %d has %d in stock, cart holds %d", ErrOutOfStock, productID, stock.Amount, current))
		}

		next := cart.WithAdded(product)
		next.ID = cartID
		if err := s.store.Save(ctx, next); err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpAdd, fmt.Errorf("save cart: %w", err))
		}
		return next, &domain.Event{Type: domain.EventItemAdded, CartID: cartID, ProductID: productID, Amount: current + 1}, nil
	})
}

func (s *Service) RemoveProduct(ctx context.Context, cartID string, productID int64) (domain.Cart, error) {
	if err := validate(cartID, productID); err != nil {
		return domain.Cart{}, s.fail(ctx, cartID, domain.OpRemove, err)
	}

	return s.mutate(ctx, cartID, func() (domain.Cart, *domain.Event, error) {
		cart, err := s.store.Load(ctx, cartID)
		if err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpRemove, fmt.Errorf("load cart: %w", err))
		}
		if _, _, ok := cart.Find(productID); !ok {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpRemove, fmt.Errorf("%w: product %d", ErrProductNotInCart, productID))
		}

		next := cart.Without(productID)
		next.ID = cartID
		if err := s.store.Save(ctx, next); err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpRemove, fmt.Errorf("save cart: %w", err))
		}
		return next, &domain.Event{Type: domain.EventItemRemoved, CartID: cartID, ProductID: productID}, nil
	})
}

// UpdateProductAmount sets the amount of a line. Amounts <= 0 are ignored and
// the current snapshot is returned without any remote call or write.
func (s *Service) UpdateProductAmount(ctx context.Context, cartID string, productID int64, amount int) (domain.Cart, error) {
	if err := validate(cartID, productID); err != nil {
		return domain.Cart{}, s.fail(ctx, cartID, domain.OpUpdateAmount, err)
	}

	return s.mutate(ctx, cartID, func() (domain.Cart, *domain.Event, error) {
		if amount <= 0 {
			cart, err := s.store.Load(ctx, cartID)
			if err != nil {
				return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpUpdateAmount, fmt.Errorf("load cart: %w", err))
			}
			return cart, nil, nil
		}

		stock, err := s.stock.GetStock(ctx, productID)
		if err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpUpdateAmount, fmt.Errorf("get stock %d: %w", productID, err))
		}
		if stock.Amount < amount {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpUpdateAmount,
				fmt.Errorf("%w: product %d has %d in stock, requested %d", ErrOutOfStock, productID, stock.Amount, amount))
		}

		cart, err := s.store.Load(ctx, cartID)
		if err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpUpdateAmount, fmt.Errorf("load cart: %w", err))
		}
		if _, _, ok := cart.Find(productID); !ok {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpUpdateAmount, fmt.Errorf("%w: product %d", ErrProductNotInCart, productID))
		}

		next := cart.WithAmount(productID, amount)
		next.ID = cartID
		if err := s.store.Save(ctx, next); err != nil {
			return domain.Cart{}, nil, s.fail(ctx, cartID, domain.OpUpdateAmount, fmt.Errorf("save cart: %w", err))
		}
		return next, &domain.Event{Type: domain.EventItemUpdated, CartID: cartID, ProductID: productID, Amount: amount}, nil
	})
}

// mutate runs fn under the cart's lock and publishes its event once the lock
// is released.
func (s *Service) mutate(ctx context.Context, cartID string, fn func() (domain.Cart, *domain.Event, error)) (domain.Cart, error) {
	cart, ev, err := func() (domain.Cart, *domain.Event, error) {
		unlock := s.locks.lock(cartID)
		defer unlock()
		return fn()
	}()
	if err != nil {
		return domain.Cart{}, err
	}
	if ev != nil {
		s.publish(ctx, *ev)
	}
	return cart, nil
}

func (s *Service) publish(ctx context.Context, ev domain.Event) {
	ev.At = s.now().UTC()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "publish cart event failed",
			slog.String("type", ev.Type),
			slog.String("cart_id", ev.CartID),
			slog.Any("err", err),
		)
	}
}

func validate(cartID string, productID int64) error {
	if strings.TrimSpace(cartID) == "" {
		return fmt.Errorf("%w: empty cart id", ErrInvalidInput)
	}
	if productID <= 0 {
		return fmt.Errorf("%w: product id %d", ErrInvalidInput, productID)
	}
	return nil
}
