package postgres

// Error message formats
const (
	ErrMsgLoadPlayerFmt     = "failed to load player %s: %w"
	ErrMsgDecodePlayerFmt   = "failed to decode player %s: %w"
	ErrMsgEncodePlayerFmt   = "failed to encode player %s: %w"
	ErrMsgSavePlayerFmt     = "failed to save player %s: %w"
	ErrMsgListActivitiesFmt = "failed to list pending activities: %w"
	ErrMsgMaxRankFmt        = "failed to read max rank: %w"
	ErrMsgQueryLadderFmt    = "failed to query ladder: %w"
)
