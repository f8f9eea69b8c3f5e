package event

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type retryItem struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus so that a failed publish is retried in the
// background with exponential backoff, then dead-lettered
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	queue    chan retryItem
	shutdown chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// NewResilientPublisher starts the retry loop
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = RetryInitialDelay
	}

	p := &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		queue:      make(chan retryItem, RetryQueueBufferSize),
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryLoop()
	return p, nil
}

// PublishWithRetry publishes once and queues the event for retry on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return
	}
	slog.Warn(LogMsgEventPublishFailed, "event_type", event.Type, "error", err)
	p.enqueue(retryItem{event: event, attempt: 1, lastErr: err})
}

// Publish satisfies Bus. Failures are handled in the background and never returned.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	p.PublishWithRetry(ctx, event)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops retrying and dead-letters whatever is still queued
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	drained := 0
	for {
		select {
		case item := <-p.queue:
			p.writeDeadLetter(item)
			drained++
		default:
			if drained > 0 {
				slog.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return p.deadLetter.Close()
		}
	}
}

func (p *ResilientPublisher) enqueue(item retryItem) {
	select {
	case p.queue <- item:
	default:
		slog.Error(LogMsgRetryQueueFull, "event_type", item.event.Type)
		p.writeDeadLetter(item)
	}
}

func (p *ResilientPublisher) retryLoop() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			return
		case item := <-p.queue:
			timer := time.NewTimer(CalculateRetryDelay(p.baseDelay, item.attempt))
			select {
			case <-p.shutdown:
				timer.Stop()
				p.writeDeadLetter(item)
				return
			case <-timer.C:
			}

			err := p.inner.Publish(context.Background(), item.event)
			if err == nil {
				slog.Info(LogMsgEventRetrySucceeded, "event_type", item.event.Type, "attempt", item.attempt)
				continue
			}

			item.lastErr = err
			if item.attempt >= p.maxRetries {
				p.writeDeadLetter(item)
				continue
			}
			slog.Warn(LogMsgEventRetryFailed, "event_type", item.event.Type, "attempt", item.attempt, "error", err)
			item.attempt++
			p.enqueue(item)
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(item retryItem) {
	slog.Warn(LogMsgEventDeadLettered, "event_type", item.event.Type, "attempts", item.attempt)
	if err := p.deadLetter.Write(item.event, item.attempt, item.lastErr); err != nil {
		slog.Error(LogMsgDeadLetterWriteFailed, "error", err)
	}
}
