package scheduler

// Log messages
const (
	LogMsgJobScheduled = "Periodic job scheduled"
	LogMsgJobDisabled  = "Periodic job disabled, interval not positive"
	LogMsgTickSkipped  = "Previous run still pending, tick skipped"
)

// Job names
const (
	JobCheckpoint = "checkpoint"
)
