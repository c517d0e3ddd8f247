// Package routepath stores canonical HTTP paths for navshell routes.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root              = "/"
	Home              = Root
	Drafts            = "/drafts"
	Settings          = "/settings"
	Login             = "/login"
	Register          = "/register"
	Logout            = "/logout"
	Health            = "/up"
	StaticPrefix      = "/static/"
	NavbarPrefix      = "/navbar/"
	Navbar            = "/navbar"
	NavbarAccount     = "/navbar/account"
	NavbarEvents      = "/navbar/events"
	ProfilePattern    = "/{username}"
	UsernamePathValue = "username"

	PanelQueryKey    = "panel"
	ExpandedQueryKey = "expanded"
	ViewportQueryKey = "vw"
	NextQueryKey     = "next"
)

// reservedSegments are top-level path segments owned by fixed routes, so they
// can never be usernames.
var reservedSegments = map[string]struct{}{
	"drafts":   {},
	"settings": {},
	"login":    {},
	"register": {},
	"logout":   {},
	"up":       {},
	"static":   {},
	"navbar":   {},
}

// Profile returns the public profile route for username.
func Profile(username string) string {
	return Root + url.PathEscape(strings.TrimSpace(username))
}

// IsReservedSegment reports whether segment collides with a fixed route.
func IsReservedSegment(segment string) bool {
	_, ok := reservedSegments[strings.ToLower(strings.TrimSpace(segment))]
	return ok
}

// NavbarFragment returns the navbar fragment route carrying the panel state.
func NavbarFragment(panel string) string {
	return withQuery(Navbar, PanelQueryKey, panel)
}

// NavbarAccountFragment returns the account-menu fragment route carrying the
// menu expansion state.
func NavbarAccountFragment(expanded bool) string {
	value := "false"
	if expanded {
		value = "true"
	}
	return withQuery(NavbarAccount, ExpandedQueryKey, value)
}

// LoginWithNext returns the login route that resumes at next after sign-in.
func LoginWithNext(next string) string {
	next = SafeNext(next)
	if next == Root {
		return Login
	}
	return withQuery(Login, NextQueryKey, next)
}

// SafeNext keeps only same-site absolute paths, falling back to Root.
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return Root
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return Root
	}
	return next
}

func withQuery(path, key, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return path
	}
	query := url.Values{}
	query.Set(key, value)
	return path + "?" + query.Encode()
}
