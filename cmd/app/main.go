package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/Honoris27/Arena-of-Legends-sub000/docs"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/bootstrap"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/config"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/server"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/sse"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/worker"
)

const shutdownTimeout = 30 * time.Second

// @title Arena of Legends API
// @version 1.0
// @description Gladiator RPG engine: characters, market, forge, activities, arena ladder and bank.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		store.Close()
		return err
	}

	svcs, err := bootstrap.InitializeServices(cfg, store, publisher)
	if err != nil {
		_ = publisher.Shutdown(ctx)
		store.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	activityWorker := worker.NewActivityWorker(svcs.Economy, nil)
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:       bus,
		SSEHub:         hub,
		ActivityWorker: activityWorker,
	})
	activityWorker.Start(ctx)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		MaxBodyBytes:      cfg.MaxBodyBytes,
		ReplayDelay:       cfg.DuelReplayDelay,
		Readiness:         store.Readiness,
		Version:           cfg.Version,
	}, svcs.Economy, hub)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:             srv,
			ActivityWorker:     activityWorker,
			Services:           svcs,
			SSEHub:             hub,
			ResilientPublisher: publisher,
			Storage:            store,
		})
		return nil
	})

	return g.Wait()
}
