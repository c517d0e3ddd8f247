package navigation

import "testing"

func TestPanelStartsClosed(t *testing.T) {
	t.Parallel()

	var p PanelState
	if p.IsOpen() {
		t.Fatal("zero PanelState is open, want closed")
	}
}

func TestPanelToggleFlipsOncePerActivation(t *testing.T) {
	t.Parallel()

	for _, start := range []PanelState{PanelClosed, PanelOpen} {
		once := start.Toggle()
		if once == start {
			t.Fatalf("Toggle(%v) = %v, want flipped", start, once)
		}
		if twice := once.Toggle(); twice != start {
			t.Fatalf("Toggle(Toggle(%v)) = %v, want %v", start, twice, start)
		}
	}
}

func TestParsePanelState(t *testing.T) {
	t.Parallel()

	tests := map[string]PanelState{
		"open":    PanelOpen,
		" OPEN ":  PanelOpen,
		"true":    PanelOpen,
		"1":       PanelOpen,
		"closed":  PanelClosed,
		"":        PanelClosed,
		"garbage": PanelClosed,
	}
	for value, want := range tests {
		if got := ParsePanelState(value); got != want {
			t.Fatalf("ParsePanelState(%q) = %v, want %v", value, got, want)
		}
	}
	if got := ParsePanelState(PanelOpen.String()); got != PanelOpen {
		t.Fatalf("round trip open = %v", got)
	}
}
