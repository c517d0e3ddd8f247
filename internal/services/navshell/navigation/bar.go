package navigation

import (
	"github.com/louisbranch/navshell/internal/platform/branding"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
)

// Inputs are everything the bar is a function of.
type Inputs struct {
	Route        string
	Session      session.State
	Viewport     Viewport
	Panel        PanelState
	MenuExpanded bool
	Avatar       AvatarResolver
}

// Brand is the static logo and title.
type Brand struct {
	Title  string
	Anchor string
}

// MobilePanel is the collapsible narrow-layout link surface.
type MobilePanel struct {
	Visible bool
	Entries []Entry
}

// Toggle is the hamburger button that owns the panel flag.
type Toggle struct {
	State PanelState
	// Href requests the bar with the panel flipped once.
	Href string
}

// Bar is the full navigation bar model for one render.
type Bar struct {
	Route         string
	Layout        Layout
	SessionStatus session.Status
	SignedIn      bool
	Brand         Brand
	// Primary is the inline link set shown on desktop layouts.
	Primary []Entry
	Account AccountMenu
	Panel   MobilePanel
	Toggle  Toggle
}

// Build derives the bar for in.
func Build(in Inputs) Bar {
	layout := in.Viewport.Layout()
	sess := in.Session.Session
	bar := Bar{
		Route:         in.Route,
		Layout:        layout,
		SessionStatus: in.Session.Status,
		SignedIn:      sess != nil,
		Brand: Brand{
			Title:  branding.AppName,
			Anchor: branding.BrandAnchor,
		},
		Account: BuildAccountMenu(in.Route, sess, layout, in.MenuExpanded, in.Avatar),
		Toggle: Toggle{
			State: in.Panel,
			Href:  routepath.NavbarFragment(in.Panel.Toggle().String()),
		},
	}
	if layout == LayoutDesktop {
		bar.Primary = PrimaryLinks(in.Route, sess, LayoutDesktop)
	}
	if layout == LayoutMobile && in.Panel.IsOpen() {
		bar.Panel = MobilePanel{
			Visible: true,
			Entries: PrimaryLinks(in.Route, sess, LayoutMobile),
		}
	}
	return bar
}

// Broken returns every broken entry across the bar's link sets.
func (b Bar) Broken() []Entry {
	broken := BrokenEntries(b.Primary)
	broken = append(broken, BrokenEntries(b.Panel.Entries)...)
	return append(broken, BrokenEntries(b.Account.Items)...)
}
