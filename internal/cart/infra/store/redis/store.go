package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store"
)

type Options struct {
	Addr     string
	Password string
	DB       int
	// TTL expires carts neither read nor written for that long. Zero keeps them forever.
	TTL time.Duration
}

type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewStore(client *goredis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Connect dials redis and pings it once so a bad address fails at startup.
func Connect(ctx context.Context, opts Options) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return NewStore(client, opts.TTL), nil
}

func (s *Store) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	key := store.Key(cartID)
	var cmd *goredis.StringCmd
	if s.ttl > 0 {
		// reading a cart counts as activity
		cmd = s.client.GetEx(ctx, key, s.ttl)
	} else {
		cmd = s.client.Get(ctx, key)
	}
	raw, err := cmd.Bytes()
	if errors.Is(err, goredis.Nil) {
		return store.Decode(cartID, nil)
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("redis get cart %s: %w", cartID, err)
	}
	return store.Decode(cartID, raw)
}

func (s *Store) Save(ctx context.Context, cart domain.Cart) error {
	b, err := store.Encode(cart)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, store.Key(cart.ID), b, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set cart %s: %w", cart.ID, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
