// Package events fans search lifecycle notifications out to SSE clients.
package events

import (
	"encoding/json"
	"sync"
	"time"
)

// Event types published by the engine.
const (
	TypeSearchStarted   = "search_started"
	TypeSearchCompleted = "search_completed"
	TypeConfigUpdated   = "config_updated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent serializes one event envelope. Marshal failures on our own
// payload types would be programming errors, so they are swallowed.
func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	b, _ := json.Marshal(Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	})
	return string(b)
}

// Hub is a broadcast channel registry. Slow subscribers lose events rather
// than stalling publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	_, ok := h.subs[ch]
	delete(h.subs, ch)
	h.mu.Unlock()
	if ok {
		close(ch)
	}
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}
