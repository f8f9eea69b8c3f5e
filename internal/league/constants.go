package league

// DefaultPageSize bounds the opponent list returned to a challenger
const DefaultPageSize = 10

// MaxIncomeHours caps how much idle time the piggy bank pays for in one collection
const MaxIncomeHours = 24

// Log messages
const (
	LogMsgOpponentQueryFailed = "opponent query failed"
	LogMsgRankingsFailed      = "rankings query failed"
)
