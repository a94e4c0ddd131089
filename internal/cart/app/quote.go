package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Quote totals the cart and re-checks the stock of every line.
func (s *Service) Quote(ctx context.Context, cartID string) (domain.Quote, error) {
	if strings.TrimSpace(cartID) == "" {
		return domain.Quote{}, s.fail(ctx, cartID, domain.OpQuote, fmt.Errorf("%w: empty cart id", ErrInvalidInput))
	}

	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, cartID, domain.OpQuote, fmt.Errorf("load cart: %w", err))
	}
	if len(cart.Items) == 0 {
		return domain.Quote{}, s.fail(ctx, cartID, domain.OpQuote, ErrEmptyCart)
	}

	lines := make([]domain.QuoteLine, len(cart.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range cart.Items {
		idx := idx
		g.Go(func() error {
			it := cart.Items[idx]
			st, err := s.stock.GetStock(gctx, it.ID)
			if err != nil {
				return fmt.Errorf("get stock %d: %w", it.ID, err)
			}

			lines[idx] = domain.QuoteLine{
				ProductID: it.ID,
				Title:     it.Title,
				Amount:    it.Amount,
				UnitPrice: it.Price,
				LineTotal: it.LineTotal(),
				Available: st.Amount,
				InStock:   st.Amount >= it.Amount,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, s.fail(ctx, cartID, domain.OpQuote, err)
	}

	q := domain.Quote{CartID: cartID, Lines: lines, Total: decimal.Zero}
	for _, ln := range lines {
		q.Total = q.Total.Add(ln.LineTotal)
		if !ln.InStock {
			q.Shortfalls++
		}
	}
	return q, nil
}
