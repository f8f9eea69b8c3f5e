package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10

	// ServiceName tags every log line
	ServiceName = "arena-of-legends"
)

// Environments that get source locations in logs
var devEnvironments = map[string]bool{"dev": true, "development": true}

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingArena       = "Starting Arena of Legends"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgSSESubscriberRegistered        = "SSE subscriber registered"
	LogMsgActivityWorkerSubscribed       = "Activity worker subscribed"
	LogMsgDeadLettersFound               = "Dead-lettered events from earlier runs"
	LogMsgDeadLetterReadFailed           = "Failed to read dead-letter file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// LeaderboardCacheSize bounds the cached ladder pages
	LeaderboardCacheSize = 256
)

const (
	LogMsgStorageReady      = "Storage ready"
	LogMsgLeaderboardReady  = "Leaderboard ready"
	LogMsgNarrativeEnabled  = "Narrative client enabled"
	LogMsgNarrativeDisabled = "Narrative client not configured, using templates"
	LogMsgCatalogLoaded     = "Location catalogue loaded"
	ErrMsgOpenPostgres      = "open postgres"
	ErrMsgMigratePostgres   = "migrate postgres"
	ErrMsgOpenSQLite        = "open sqlite"
	ErrMsgOpenRedis         = "open redis"
	ErrMsgLoadCatalog       = "load locations"
	ErrMsgUnknownBackendFmt = "unknown %s backend %q"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgServiceShutdownFailed      = " service shutdown failed"
	LogMsgWorkerShutdownFailed       = "Activity worker shutdown failed"
	LogMsgStorageCloseFailed         = "Storage close failed"
	LogMsgServerStopped              = "Server stopped"

	ServiceNameEconomy = "economy"
)
