package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	UpgradeAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpgradeAttempts,
			Help: HelpTextUpgradeAttempts,
		},
		[]string{LabelResult, LabelRarity},
	)

	ActivitiesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActivitiesCompleted,
			Help: HelpTextActivitiesCompleted,
		},
		[]string{LabelKind, LabelResult},
	)

	DuelsFinished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuelsFinished,
			Help: HelpTextDuelsFinished,
		},
		[]string{LabelKind, LabelResult},
	)

	BankOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBankOperations,
			Help: HelpTextBankOperations,
		},
		[]string{LabelOperation},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	PersistenceWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceWrites,
			Help: HelpTextPersistenceWrites,
		},
		[]string{LabelResult},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	SSEEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSSEEventsDropped,
			Help: HelpTextSSEEventsDropped,
		},
		[]string{LabelStage},
	)

	ReplaysStreamed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReplaysStreamed,
			Help: HelpTextReplaysStreamed,
		},
		[]string{LabelResult},
	)
)
