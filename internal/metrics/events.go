package metrics

import (
	"context"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// TrackedEventTypes lists every event the collector records
var TrackedEventTypes = []string{
	domain.EventTypePlayerCreated,
	domain.EventTypePlayerLeveledUp,
	domain.EventTypeItemBought,
	domain.EventTypeItemSold,
	domain.EventTypeItemUsed,
	domain.EventTypeItemUpgraded,
	domain.EventTypeActivityStarted,
	domain.EventTypeActivityCompleted,
	domain.EventTypeCombatFinished,
	domain.EventTypeBankDeposited,
	domain.EventTypeBankClaimed,
	domain.EventTypeBankCancelled,
	domain.EventTypeIncomeCollected,
}

// Register subscribes to all tracked events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range TrackedEventTypes {
		bus.Subscribe(event.Type(t), e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch string(evt.Type) {
	case domain.EventTypeItemBought:
		var p domain.ItemTradePayload
		if p, err = event.DecodePayload[domain.ItemTradePayload](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(itemLabel(p)).Inc()
			GoldSpent.Add(float64(p.Gold))
		}

	case domain.EventTypeItemSold:
		var p domain.ItemTradePayload
		if p, err = event.DecodePayload[domain.ItemTradePayload](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(itemLabel(p)).Inc()
			GoldEarned.Add(float64(p.Gold))
		}

	case domain.EventTypeItemUsed:
		var p domain.ItemUsedPayload
		if p, err = event.DecodePayload[domain.ItemUsedPayload](evt.Payload); err == nil {
			ItemsUsed.WithLabelValues(p.ItemKey).Inc()
		}

	case domain.EventTypeItemUpgraded:
		var p domain.UpgradePayload
		if p, err = event.DecodePayload[domain.UpgradePayload](evt.Payload); err == nil {
			UpgradeAttempts.WithLabelValues(resultLabel(p.Success, ResultSuccess, ResultFailure), string(p.Rarity)).Inc()
			GoldSpent.Add(float64(p.Cost))
		}

	case domain.EventTypeActivityCompleted:
		var p domain.ActivityCompletedPayload
		if p, err = event.DecodePayload[domain.ActivityCompletedPayload](evt.Payload); err == nil {
			kind := KindExpedition
			if p.IsBoss {
				kind = KindBoss
			}
			ActivitiesCompleted.WithLabelValues(kind, resultLabel(p.Won, ResultWin, ResultLoss)).Inc()
			GoldEarned.Add(float64(p.Gold))
		}

	case domain.EventTypeCombatFinished:
		var p domain.CombatFinishedPayload
		if p, err = event.DecodePayload[domain.CombatFinishedPayload](evt.Payload); err == nil {
			DuelsFinished.WithLabelValues(p.Kind, resultLabel(p.Won, ResultWin, ResultLoss)).Inc()
			if p.Gold > 0 {
				GoldEarned.Add(float64(p.Gold))
			}
		}

	case domain.EventTypePlayerLeveledUp:
		var p domain.LevelUpPayload
		if p, err = event.DecodePayload[domain.LevelUpPayload](evt.Payload); err == nil {
			LevelUps.Add(float64(p.NewLevel - p.OldLevel))
		}

	case domain.EventTypeBankDeposited:
		BankOperations.WithLabelValues(OperationDeposit).Inc()
	case domain.EventTypeBankClaimed:
		BankOperations.WithLabelValues(OperationClaim).Inc()
	case domain.EventTypeBankCancelled:
		BankOperations.WithLabelValues(OperationCancel).Inc()

	case domain.EventTypeIncomeCollected:
		var p domain.GoldPayload
		if p, err = event.DecodePayload[domain.GoldPayload](evt.Payload); err == nil {
			GoldEarned.Add(float64(p.Gold))
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func itemLabel(p domain.ItemTradePayload) string {
	if p.ItemKey != "" {
		return p.ItemKey
	}
	return p.ItemName
}

func resultLabel(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
