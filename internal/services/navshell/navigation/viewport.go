package navigation

// MobileBreakpoint is the viewport width, in CSS pixels, at which the bar
// switches from the mobile to the desktop layout.
const MobileBreakpoint = 768

// Layout selects which branch of the link policy applies.
type Layout int

const (
	// LayoutDesktop is the wide layout and the default before measurement.
	LayoutDesktop Layout = iota
	// LayoutMobile is the narrow layout with the collapsible panel.
	LayoutMobile
)

// String returns the layout name used in markup and traces.
func (l Layout) String() string {
	if l == LayoutMobile {
		return "mobile"
	}
	return "desktop"
}

// Viewport is the measured browser width. The zero value is unmeasured.
type Viewport struct {
	Width    int
	Measured bool
}

// MeasuredViewport returns a viewport for a known width.
func MeasuredViewport(width int) Viewport {
	return Viewport{Width: width, Measured: true}
}

// IsMobile reports whether the width is below the breakpoint. An unmeasured
// viewport is never mobile.
func (v Viewport) IsMobile() bool {
	return v.Measured && v.Width < MobileBreakpoint
}

// Layout returns the layout for the viewport.
func (v Viewport) Layout() Layout {
	if v.IsMobile() {
		return LayoutMobile
	}
	return LayoutDesktop
}
