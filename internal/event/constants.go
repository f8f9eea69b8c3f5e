package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration constants
const (
	// RetryQueueBufferSize is the buffer size for the retry queue
	RetryQueueBufferSize = 1000

	// RetryInitialDelay is the delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	DeadLetterFilePermissions = 0o644
	DeadLetterSchemaVersion   = "1.0"
	// DeadLetterMaxLine bounds one entry when reading the file back
	DeadLetterMaxLine = 1 << 20

	ErrMsgOpenDeadLetterFmt = "open dead-letter file %s: %w"
)

// Metadata keys
const (
	MetaKeyPlayerID  = "player_id"
	MetaKeyTimestamp = "timestamp"
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"

	// Publish error for failing handlers
	ErrMsgHandlersFailedFmt = "%d handlers failed for event %s: %w"
)

// CalculateRetryDelay returns the exponential backoff delay for an attempt:
// base, 2*base, 4*base, ...
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
