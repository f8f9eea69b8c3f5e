package bootstrap

import (
	"log/slog"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/metrics"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/sse"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus       event.Bus
	SSEHub         *sse.Hub
	ActivityWorker *worker.ActivityWorker
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event counters)
// - SSE subscriber (pushes events to connected clients)
// - Activity worker (schedules auto-completion when an activity starts)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.SSEHub != nil {
		sse.NewSubscriber(deps.SSEHub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.ActivityWorker != nil {
		deps.ActivityWorker.Subscribe(deps.EventBus)
		slog.Info(LogMsgActivityWorkerSubscribed)
	}
}
