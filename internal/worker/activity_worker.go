package worker

import (
	"context"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/repository"
)

// ActivityCompleter is the part of the economy service the worker drives
type ActivityCompleter interface {
	PendingActivities(ctx context.Context) ([]repository.PendingActivity, error)
	AutoCompleteActivity(ctx context.Context, playerID string) error
}

// ActivityWorker completes activities server-side when their deadline passes.
// Deadlines are absolute, so a restart only needs to reload and reschedule them.
type ActivityWorker struct {
	timers  *deadlines
	service ActivityCompleter
	now     func() time.Time
}

// NewActivityWorker creates a new ActivityWorker
func NewActivityWorker(service ActivityCompleter, now func() time.Time) *ActivityWorker {
	if now == nil {
		now = time.Now
	}
	return &ActivityWorker{timers: newDeadlines(), service: service, now: now}
}

// Start reschedules every activity still in flight in storage
func (w *ActivityWorker) Start(ctx context.Context) {
	log := logger.FromContext(ctx)

	pending, err := w.service.PendingActivities(ctx)
	if err != nil {
		log.Error(LogMsgFailedToLoadPendingActivities, "error", err)
		return
	}

	log.Info(LogMsgResumingActivities, "count", len(pending))
	for _, p := range pending {
		w.Schedule(p.PlayerID, p.Activity.EndTime)
	}
}

// Subscribe subscribes the worker to activity start events
func (w *ActivityWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.Type(domain.EventTypeActivityStarted), w.handleActivityStarted)
}

func (w *ActivityWorker) handleActivityStarted(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[domain.ActivityStartedPayload](e.Payload)
	if err != nil || payload.PlayerID == "" {
		logger.FromContext(ctx).Warn(LogMsgInvalidActivityPayload, "event_type", e.Type)
		return nil
	}
	w.Schedule(payload.PlayerID, payload.EndTime)
	return nil
}

// Schedule arranges for the player's activity to complete at deadline.
// A deadline already in the past completes immediately.
func (w *ActivityWorker) Schedule(playerID string, deadline time.Time) {
	duration := deadline.Sub(w.now())
	logger.FromContext(context.Background()).Info(LogMsgSchedulingActivityCompletion,
		"player_id", playerID, "duration", duration)

	if duration <= 0 {
		w.timers.run(func() { w.complete(playerID) })
		return
	}
	w.timers.arm(playerID, duration, func() { w.complete(playerID) })
}

// Pending returns the number of outstanding timers
func (w *ActivityWorker) Pending() int {
	return w.timers.len()
}

func (w *ActivityWorker) complete(playerID string) {
	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Info(LogMsgCompletingScheduledActivity, "player_id", playerID)

	if err := w.service.AutoCompleteActivity(ctx, playerID); err != nil {
		log.Error(LogMsgFailedToCompleteActivity, "player_id", playerID, "error", err)
	}
}

// Shutdown cancels pending timers and waits for in-flight completions.
// Cancelled activities are picked up again by Start on the next boot.
func (w *ActivityWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgActivityWorkerStopping)

	cancelled, err := w.timers.close(ctx)
	if len(cancelled) > 0 {
		log.Info(LogMsgCancelledActivityTimers, "count", len(cancelled))
	}
	if err != nil {
		log.Warn(LogMsgActivityWorkerTimeout, "error", err)
		return err
	}
	log.Info(LogMsgActivityWorkerStopped)
	return nil
}
