package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	catalogapp "github.com/dwikikusuma/rocketshoes/internal/catalog/app"
	cataloghttp "github.com/dwikikusuma/rocketshoes/internal/catalog/httpapi"
	"github.com/dwikikusuma/rocketshoes/internal/catalog/infra/memory"
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
	log := logger.New(logger.Options{Service: "catalogd", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	repo, err := memory.Load(cfg.CatalogSeedPath)
	if err != nil {
		log.Error("load catalog seed failed", slog.Any("err", err), slog.String("path", cfg.CatalogSeedPath))
		os.Exit(1)
	}
	svc := catalogapp.NewService(repo, repo)
	server := cataloghttp.NewServer(svc, log).App()

	addr := fmt.Sprintf(":%d", cfg.CatalogPort)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("catalog starting", slog.String("addr", addr))
		if err := server.Listen(addr); err != nil {
			log.Error("catalog serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested", slog.Any("cause", context.Cause(ctx)))

	if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Warn("graceful stop failed", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
