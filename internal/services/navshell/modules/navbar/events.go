package navbar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/websocket"

	"github.com/louisbranch/navshell/internal/platform/timeouts"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
)

// eventBuffer is the per-connection hub buffer.
const eventBuffer = 4

type eventSessionKey struct{}

// handleEvents upgrades to a websocket that delivers lifecycle events for the
// caller's session. The stream ends after a sign-out event or when the client
// goes away.
func (h handlers) handleEvents(w http.ResponseWriter, r *http.Request) {
	sessions := h.deps.Sessions
	if sessions == nil || sessions.Hub() == nil {
		http.Error(w, "session events are not configured", http.StatusServiceUnavailable)
		return
	}
	if r.Header.Get("Origin") != "" && !sessions.SchemePolicy().HasSameOriginProof(r) {
		h.deps.Logf(r, "navbar events rejected origin=%q", r.Header.Get("Origin"))
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	state := sessions.Resolve(r)
	if state.Session == nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	ctx := context.WithValue(r.Context(), eventSessionKey{}, state.Session.ID)
	websocket.Handler(func(conn *websocket.Conn) {
		h.streamEvents(conn, sessions.Hub())
	}).ServeHTTP(w, r.WithContext(ctx))
}

func (h handlers) streamEvents(conn *websocket.Conn, hub *session.Hub) {
	defer func() {
		_ = conn.Close()
	}()
	request := conn.Request()
	sessionID, _ := request.Context().Value(eventSessionKey{}).(string)
	if strings.TrimSpace(sessionID) == "" {
		return
	}

	events, cancel := hub.Subscribe(sessionID, eventBuffer)
	defer cancel()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		// Client frames are ignored; reading only detects the close.
		_, _ = io.Copy(io.Discard, conn)
	}()

	encoder := json.NewEncoder(conn)
	for {
		select {
		case <-request.Context().Done():
			return
		case <-gone:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(timeouts.EventWrite))
			if err := encoder.Encode(event); err != nil {
				h.deps.Logf(request, "navbar event write failed session_id=%s err=%v", sessionID, err)
				return
			}
			if event.Kind == session.EventSignedOut {
				return
			}
		}
	}
}
