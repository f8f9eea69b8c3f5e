// Package sse streams game events to browsers over server-sent events.
package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/metrics"
)

// Client is one connected stream
type Client struct {
	ID           string
	EventChannel chan Event
	Filter       Filter
}

// Hub fans events out to connected clients. Registration is synchronous;
// delivery runs on a single loop so a slow client never blocks publishers.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	queue    chan Event
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	now      func() time.Time
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		queue:    make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
		now:      time.Now,
	}
}

// Start starts the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.deliver()
}

// Stop ends delivery and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.closed = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.SSEClients.Set(0)
	})
}

func (h *Hub) deliver() {
	defer h.wg.Done()
	for {
		select {
		case e := <-h.queue:
			h.fanOut(e)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) fanOut(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.Filter.Match(e) {
			continue
		}
		select {
		case c.EventChannel <- e:
		default:
			metrics.SSEEventsDropped.WithLabelValues(metrics.StageClient).Inc()
		}
	}
}

// Register adds a client. After Stop the returned client's channel is
// already closed.
func (h *Hub) Register(filter Filter) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
		Filter:       filter,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	metrics.SSEClients.Inc()
	return c
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
		metrics.SSEClients.Dec()
	}
}

// Broadcast queues an event for every interested client. It never blocks;
// when the queue is full the event is dropped.
func (h *Hub) Broadcast(eventType, playerID string, payload any) {
	e := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		PlayerID:  playerID,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.queue <- e:
	default:
		metrics.SSEEventsDropped.WithLabelValues(metrics.StageBroadcast).Inc()
		slog.Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders e in wire format. Events without an ID omit the
// id field so keepalives do not reset the client's last event ID.
func FormatSSEMessage(e Event) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if e.ID != "" {
		buf.WriteString("id: " + e.ID + "\n")
	}
	buf.WriteString("event: " + e.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
