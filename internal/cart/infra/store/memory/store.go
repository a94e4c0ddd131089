package memory

import (
	"context"
	"sync"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store"
)

// Store keeps encoded carts in process memory.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Load(_ context.Context, cartID string) (domain.Cart, error) {
	s.mu.RLock()
	raw := s.data[store.Key(cartID)]
	s.mu.RUnlock()
	return store.Decode(cartID, raw)
}

func (s *Store) Save(_ context.Context, cart domain.Cart) error {
	b, err := store.Encode(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[store.Key(cart.ID)] = b
	s.mu.Unlock()
	return nil
}
