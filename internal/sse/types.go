package sse

// Event is one message on the stream
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	PlayerID  string `json:"player_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Filter selects which events a client receives. Empty fields match everything.
type Filter struct {
	Types    map[string]bool
	PlayerID string
}

// Match reports whether e passes the filter
func (f Filter) Match(e Event) bool {
	if f.Types != nil && !f.Types[e.Type] {
		return false
	}
	if f.PlayerID != "" && e.PlayerID != "" && e.PlayerID != f.PlayerID {
		return false
	}
	return true
}

// NewFilter builds a filter from the requested types and player
func NewFilter(types []string, playerID string) Filter {
	f := Filter{PlayerID: playerID}
	if len(types) > 0 {
		f.Types = make(map[string]bool, len(types))
		for _, t := range types {
			f.Types[t] = true
		}
	}
	return f
}
