package persistence

import "time"

// DefaultDebounce is the quiet period before a burst of mutations is written
const DefaultDebounce = 2 * time.Second

// Log messages
const (
	LogMsgSaveFailed    = "Player save failed, will retry on next change"
	LogMsgSaved         = "Player saved"
	LogMsgFlushStarted  = "Flushing pending player saves"
	LogMsgFlushFailed   = "Flush left unsaved players"
	LogMsgSaveNotQueued = "Player save not queued, pool stopped"
)
