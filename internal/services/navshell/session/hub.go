package session

import (
	"strings"
	"sync"
	"time"
)

// EventKind names a session lifecycle event.
type EventKind string

const (
	// EventSignedOut is published after a session is revoked.
	EventSignedOut EventKind = "session.signed_out"
)

// Event is one session lifecycle notification.
type Event struct {
	Kind      EventKind `json:"kind"`
	SessionID string    `json:"session_id"`
	At        time.Time `json:"at"`
}

// Hub fans session events out to subscribers of one session id. Delivery is
// best effort: a full subscriber buffer drops the event for that subscriber.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: map[string]map[chan Event]struct{}{}}
}

// Subscribe registers for events about sessionID. The returned cancel func
// unregisters and closes the channel; it is safe to call more than once.
func (h *Hub) Subscribe(sessionID string, buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	sessionID = strings.TrimSpace(sessionID)
	ch := make(chan Event, buffer)

	h.mu.Lock()
	if h.subs == nil {
		h.subs = map[string]map[chan Event]struct{}{}
	}
	set, ok := h.subs[sessionID]
	if !ok {
		set = map[chan Event]struct{}{}
		h.subs[sessionID] = set
	}
	set[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.subs[sessionID]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(h.subs, sessionID)
				}
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers event to current subscribers of event.SessionID and
// returns how many received it.
func (h *Hub) Publish(event Event) int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	delivered := 0
	for ch := range h.subs[strings.TrimSpace(event.SessionID)] {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers returns the subscriber count for sessionID.
func (h *Hub) Subscribers(sessionID string) int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[strings.TrimSpace(sessionID)])
}
