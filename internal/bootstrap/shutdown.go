package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/server"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/sse"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ActivityWorker     *worker.ActivityWorker
	Services           *Services
	SSEHub             *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Activity worker (cancel pending timers)
// 3. Periodic jobs
// 4. Economy service (flush sessions through the saver)
// 5. Worker pool (drain queued writes)
// 6. SSE hub and event publisher
// 7. Storage connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.ActivityWorker != nil {
		if err := c.ActivityWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if c.Services != nil {
		if c.Services.Scheduler != nil {
			c.Services.Scheduler.Stop()
		}
		shutdownService(ctx, ServiceNameEconomy, c.Services.Economy)
		c.Services.Pool.Stop()
	}

	if c.SSEHub != nil {
		c.SSEHub.Stop()
	}

	if c.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
