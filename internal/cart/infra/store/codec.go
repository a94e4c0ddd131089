// Package store holds the storage layout shared by every cart store driver.
//
// A cart is kept under one key as a JSON array of items, the layout the web
// storefront used for browser local storage, namespaced per cart.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
)

const KeyPrefix = "@RocketShoes:cart"

var ErrCorruptCart = errors.New("stored cart cannot be decoded")

func Key(cartID string) string {
	return KeyPrefix + ":" + cartID
}

func Encode(cart domain.Cart) ([]byte, error) {
	items := cart.Items
	if items == nil {
		items = []domain.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart %s: %w", cart.ID, err)
	}
	return b, nil
}

// Decode rebuilds a cart from its stored value. An empty value is an empty cart;
// duplicate products or amounts below one make the value corrupt.
func Decode(cartID string, raw []byte) (domain.Cart, error) {
	cart := domain.Cart{ID: cartID, Items: []domain.Item{}}
	if len(raw) == 0 {
		return cart, nil
	}
	if err := json.Unmarshal(raw, &cart.Items); err != nil {
		return domain.Cart{}, fmt.Errorf("%w: cart %s: %v", ErrCorruptCart, cartID, err)
	}

	// other writers share this layout; hold them to the cart invariants
	seen := make(map[int64]struct{}, len(cart.Items))
	for _, it := range cart.Items {
		if it.Amount < 1 {
			return domain.Cart{}, fmt.Errorf("%w: cart %s: product %d has amount %d", ErrCorruptCart, cartID, it.ID, it.Amount)
		}
		if _, dup := seen[it.ID]; dup {
			return domain.Cart{}, fmt.Errorf("%w: cart %s: product %d listed twice", ErrCorruptCart, cartID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return cart, nil
}
