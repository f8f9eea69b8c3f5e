package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// Handler streams hub events to one client. ?types=a,b narrows by event type
// and ?player_id=x narrows to one player's events plus global ones.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		if raw := r.URL.Query().Get(QueryTypes); raw != "" {
			eventTypes = strings.Split(raw, ",")
		}
		playerID := r.URL.Query().Get(QueryPlayerID)

		client := hub.Register(NewFilter(eventTypes, playerID))
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"filters", eventTypes,
			"player_id", playerID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		write := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			PlayerID:  playerID,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"client_id": client.ID, "filters": eventTypes},
		}) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
