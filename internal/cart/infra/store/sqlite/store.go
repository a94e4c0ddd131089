// Package sqlite stores carts in a local sqlite file, the on-disk stand-in
// for browser local storage used by the terminal storefront.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dwikikusuma/rocketshoes/internal/cart/domain"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates the parent directory and schema when needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// a single connection keeps writes serialised on the file
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, store.Key(cartID)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Decode(cartID, nil)
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("select cart %s: %w", cartID, err)
	}
	return store.Decode(cartID, []byte(raw))
}

func (s *Store) Save(ctx context.Context, cart domain.Cart) error {
	b, err := store.Encode(cart)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		store.Key(cart.ID), string(b), s.now().Unix())
	if err != nil {
		return fmt.Errorf("upsert cart %s: %w", cart.ID, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
