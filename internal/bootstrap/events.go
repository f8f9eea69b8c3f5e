package bootstrap

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/config"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
)

// InitializeEventSystem builds the in-memory bus and the resilient publisher
// the economy publishes through. Handlers subscribe on the bus directly.
// Entries left in the dead-letter file by earlier runs are reported so an
// operator can inspect them; they are not replayed.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.ResilientPublisher, error) {
	maxRetries := cmp.Or(cfg.EventMaxRetries, EventDefaultMaxRetries)
	retryDelay := cmp.Or(cfg.EventRetryDelay, EventDefaultRetryDelay)
	deadLetterPath := cmp.Or(cfg.EventDeadLetterPath, EventDefaultDeadLetterPath)

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}
	reportDeadLetters(deadLetterPath)

	bus := event.NewMemoryBus()
	publisher, err := event.NewResilientPublisher(bus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)
	return bus, publisher, nil
}

func reportDeadLetters(path string) {
	entries, skipped, err := event.ReadDeadLetterFile(path)
	if err != nil {
		slog.Warn(LogMsgDeadLetterReadFailed, "path", path, "error", err)
		return
	}
	if len(entries) == 0 && skipped == 0 {
		return
	}
	byType := make(map[event.Type]int)
	for _, e := range entries {
		byType[e.Event.Type]++
	}
	slog.Warn(LogMsgDeadLettersFound, "path", path, "count", len(entries), "unreadable", skipped, "by_type", byType)
}
