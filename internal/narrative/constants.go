package narrative

import "time"

// Client defaults
const (
	DefaultTimeout = 2 * time.Second
	HeaderAPIKey   = "X-API-Key"
	PathNarrate    = "/narrate"
	PathDescribe   = "/describe"
)

// Outcomes passed to Narrate
const (
	OutcomeVictory  = "victory"
	OutcomeDefeat   = "defeat"
	OutcomeComplete = "complete"
)

// Log messages
const (
	LogMsgNarrateFallback  = "Narrative service unavailable, using template"
	LogMsgDescribeFallback = "Enemy flavor unavailable, using template"
)
