package sse

import (
	"context"
	"log/slog"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/event"
)

// StreamedEvents lists the bus events forwarded to clients
var StreamedEvents = []string{
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

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe registers the forwarding handler for every streamed event type
func (s *Subscriber) Subscribe() {
	for _, t := range StreamedEvents {
		s.bus.Subscribe(event.Type(t), s.forward)
	}
	slog.Info(LogMsgSubscribed, "types", StreamedEvents)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.PlayerID(), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "player_id", evt.PlayerID())
	return nil
}
