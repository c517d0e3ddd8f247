package navigation

import "strings"

// PanelState is the mobile panel flag, the only state the bar owns.
type PanelState int

const (
	// PanelClosed is the initial state.
	PanelClosed PanelState = iota
	// PanelOpen shows the mobile panel on mobile layouts.
	PanelOpen
)

// Toggle returns the state after one toggle activation.
func (p PanelState) Toggle() PanelState {
	if p == PanelOpen {
		return PanelClosed
	}
	return PanelOpen
}

// IsOpen reports whether the panel is open.
func (p PanelState) IsOpen() bool {
	return p == PanelOpen
}

// String returns the query value for the state.
func (p PanelState) String() string {
	if p == PanelOpen {
		return "open"
	}
	return "closed"
}

// ParsePanelState reads a panel query value. Anything unrecognized is closed.
func ParsePanelState(value string) PanelState {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "open", "true", "1":
		return PanelOpen
	default:
		return PanelClosed
	}
}
