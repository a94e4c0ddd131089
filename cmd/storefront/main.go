package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dwikikusuma/rocketshoes/internal/cart/app"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/catalogapi"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store/driver"
	"github.com/dwikikusuma/rocketshoes/internal/storefront/tui"
	"github.com/dwikikusuma/rocketshoes/pkg/config"
	"github.com/dwikikusuma/rocketshoes/pkg/logger"
	"github.com/dwikikusuma/rocketshoes/pkg/shutdown"
)

// localCartID names the single cart a terminal session works on.
const localCartID = "local"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.StoreDriver == config.StoreMemory {
		// the storefront keeps its cart between runs, like browser storage
		cfg.StoreDriver = config.StoreSQLite
	}
	if !filepath.IsAbs(cfg.SQLitePath) {
		if dir, err := os.UserConfigDir(); err == nil {
			cfg.SQLitePath = filepath.Join(dir, cfg.SQLitePath)
		}
	}

	logFile, err := os.OpenFile(filepath.Join(os.TempDir(), "rocketshoes-storefront.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel, Output: logFile, Format: "text"})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := driver.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open cart store: %w", err)
	}
	defer store.Close()

	catalog := catalogapi.NewClient(cfg.CatalogAPIURL, cfg.HTTPClientTimeout, log)
	svc := app.NewService(store, catalog, catalog, app.Options{Logger: log})

	model := tui.New(ctx, catalog, svc, localCartID, cfg.CurrencySymbol)
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
