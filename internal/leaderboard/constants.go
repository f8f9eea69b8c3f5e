package leaderboard

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Second
)

// Redis key layout
const (
	DefaultKeyPrefix = "arena"
	ladderKeySuffix  = ":ladder"
	playerKeyInfix   = ":player:"
)

// Player hash fields
const (
	fieldName   = "name"
	fieldLevel  = "level"
	fieldWins   = "wins"
	fieldAvatar = "avatar"
)

// scanBatch is how many ladder members are fetched per round trip when
// searching for opponents
const scanBatch = 100

// Log messages
const (
	LogMsgCacheHit        = "Leaderboard cache hit"
	LogMsgCacheInvalidate = "Leaderboard cache invalidated"
	LogMsgEntryMissing    = "Ladder member has no player hash"
)
