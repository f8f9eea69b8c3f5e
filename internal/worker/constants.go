package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolStopped     = "Job dropped, pool stopped"
)

// ============================================================================
// Log Messages - Activity Worker
// ============================================================================

// Log messages for activity worker operations
const (
	LogMsgFailedToLoadPendingActivities = "Failed to load pending activities on startup"
	LogMsgResumingActivities            = "Resuming pending activities"
	LogMsgSchedulingActivityCompletion  = "Scheduling activity completion"
	LogMsgCompletingScheduledActivity   = "Completing scheduled activity"
	LogMsgFailedToCompleteActivity      = "Failed to complete activity"
	LogMsgInvalidActivityPayload        = "Ignoring activity event with unexpected payload"
	LogMsgActivityWorkerStopping        = "Shutting down activity worker"
	LogMsgCancelledActivityTimers       = "Cancelled pending activity completions"
	LogMsgActivityWorkerTimeout         = "Activity worker shutdown timeout"
	LogMsgActivityWorkerStopped         = "Activity worker shutdown complete"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
