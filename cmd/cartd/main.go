package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/dwikikusuma/rocketshoes/internal/cart/app"
	"github.com/dwikikusuma/rocketshoes/internal/cart/httpapi"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/catalogapi"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/events/kafka"
	"github.com/dwikikusuma/rocketshoes/internal/cart/infra/store/driver"
	"github.com/dwikikusuma/rocketshoes/pkg/config"
	"github.com/dwikikusuma/rocketshoes/pkg/logger"
	"github.com/dwikikusuma/rocketshoes/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "cartd", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := driver.Open(ctx, cfg)
	if err != nil {
		log.Error("open cart store failed", slog.Any("err", err), slog.String("driver", cfg.StoreDriver))
		os.Exit(1)
	}
	defer store.Close()

	var events app.EventPublisher = app.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		pub, err := kafka.Dial(cfg.KafkaBrokers, log)
		if err != nil {
			log.Error("kafka producer failed", slog.Any("err", err))
			os.Exit(1)
		}
		defer pub.Close()
		events = pub
	}

	catalog := catalogapi.NewClient(cfg.CatalogAPIURL, cfg.HTTPClientTimeout, log)
	svc := app.NewService(store, catalog, catalog, app.Options{
		Events:        events,
		Logger:        log,
		MaxConcurrent: cfg.QuoteConcurrency,
	})

	server := httpapi.NewServer(svc, log).App()
	addr := fmt.Sprintf(":%d", cfg.HTTPPort)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("store", cfg.StoreDriver))
		if err := server.Listen(addr); err != nil {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
