package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsSold           = "items_sold_total"
	MetricNameItemsBought         = "items_bought_total"
	MetricNameItemsUsed           = "items_used_total"
	MetricNameUpgradeAttempts     = "upgrade_attempts_total"
	MetricNameActivitiesCompleted = "activities_completed_total"
	MetricNameDuelsFinished       = "duels_finished_total"
	MetricNameBankOperations      = "bank_operations_total"
	MetricNameGoldEarned          = "gold_earned_total"
	MetricNameGoldSpent           = "gold_spent_total"
	MetricNameLevelUps            = "level_ups_total"
	MetricNamePersistenceWrites   = "persistence_writes_total"
	MetricNameActiveSessions      = "active_sessions"
)

// Streaming metric names
const (
	MetricNameSSEClients       = "sse_clients"
	MetricNameSSEEventsDropped = "sse_events_dropped_total"
	MetricNameReplaysStreamed  = "duel_replays_streamed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsSold           = "Total number of items sold"
	HelpTextItemsBought         = "Total number of items bought"
	HelpTextItemsUsed           = "Total number of consumables used"
	HelpTextUpgradeAttempts     = "Forge attempts by result and rarity"
	HelpTextActivitiesCompleted = "Completed expeditions and boss encounters by kind and result"
	HelpTextDuelsFinished       = "Finished duels by kind and result"
	HelpTextBankOperations      = "Vault deposits, claims and cancellations"
	HelpTextGoldEarned          = "Total gold credited to players"
	HelpTextGoldSpent           = "Total gold debited from players"
	HelpTextLevelUps            = "Total number of levels gained"
	HelpTextPersistenceWrites   = "Player snapshot writes by result"
	HelpTextActiveSessions      = "Player sessions currently cached"
)

// Streaming metric help text
const (
	HelpTextSSEClients       = "Connected server-sent event clients"
	HelpTextSSEEventsDropped = "Events not delivered to SSE clients, by stage"
	HelpTextReplaysStreamed  = "Duel replays streamed over websocket, by result"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelResult    = "result"
	LabelRarity    = "rarity"
	LabelKind      = "kind"
	LabelOperation = "operation"
	LabelStage     = "stage"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultWin     = "win"
	ResultLoss    = "loss"
	ResultError   = "error"

	KindExpedition = "expedition"
	KindBoss       = "boss"

	OperationDeposit = "deposit"
	OperationClaim   = "claim"
	OperationCancel  = "cancel"

	PathUnmatched = "unmatched"

	StageBroadcast = "broadcast"
	StageClient    = "client"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected type"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
