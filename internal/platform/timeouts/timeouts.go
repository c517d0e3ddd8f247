// Package timeouts defines shared timeout constants used by navshell.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionLookup caps one session store read while rendering a page.
const SessionLookup = 2 * time.Second

// EventWrite caps one websocket frame write on the session event stream.
const EventWrite = 5 * time.Second
