package navigation

import (
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
)

// EntryID names one navigation destination.
type EntryID string

const (
	EntryHome     EntryID = "home"
	EntryProfile  EntryID = "profile"
	EntryDrafts   EntryID = "drafts"
	EntrySettings EntryID = "settings"
	EntryLogout   EntryID = "logout"
	EntryLogin    EntryID = "login"
	EntryRegister EntryID = "register"
)

// EntryKind separates plain links from actions that mutate session state.
type EntryKind int

const (
	// EntryLink navigates with GET.
	EntryLink EntryKind = iota
	// EntryAction submits a POST form to Destination.
	EntryAction
)

// Entry is one rendered navigation item.
type Entry struct {
	ID          EntryID
	Kind        EntryKind
	Destination string
	LabelKey    string
	Active      bool
	Emphasis    bool
	// Broken marks an entry whose destination could not be built. It renders
	// as a visible, non-navigating link.
	Broken bool
	Err    error
}

type entryDefinition struct {
	kind        EntryKind
	labelKey    string
	destination func(*session.Session) (string, error)
	activeAware bool
}

func fixed(path string) func(*session.Session) (string, error) {
	return func(*session.Session) (string, error) { return path, nil }
}

func profileDestination(sess *session.Session) (string, error) {
	if sess == nil {
		return "", session.ErrMalformedSession
	}
	username, err := sess.ProfileUsername()
	if err != nil {
		return "", err
	}
	return routepath.Profile(username), nil
}

var entryDefinitions = map[EntryID]entryDefinition{
	EntryHome:     {kind: EntryLink, labelKey: "nav.home", destination: fixed(routepath.Home), activeAware: true},
	EntryProfile:  {kind: EntryLink, labelKey: "nav.profile", destination: profileDestination, activeAware: true},
	EntryDrafts:   {kind: EntryLink, labelKey: "nav.drafts", destination: fixed(routepath.Drafts), activeAware: true},
	EntrySettings: {kind: EntryLink, labelKey: "nav.settings", destination: fixed(routepath.Settings), activeAware: true},
	EntryLogout:   {kind: EntryAction, labelKey: "nav.logout", destination: fixed(routepath.Logout)},
	EntryLogin:    {kind: EntryLink, labelKey: "nav.login", destination: fixed(routepath.Login)},
	EntryRegister: {kind: EntryLink, labelKey: "nav.register", destination: fixed(routepath.Register)},
}

type policyRow struct {
	id      EntryID
	desktop bool
}

// signedInPolicy lists the mobile branch in order; rows with desktop=true form
// the desktop branch. Settings and Log out live in the account menu on desktop.
var signedInPolicy = []policyRow{
	{id: EntryHome, desktop: true},
	{id: EntryProfile, desktop: true},
	{id: EntryDrafts, desktop: true},
	{id: EntrySettings},
	{id: EntryLogout},
}

var signedOutPolicy = []policyRow{
	{id: EntryLogin, desktop: true},
	{id: EntryRegister, desktop: true},
}

// emphasizedLeading is how many leading signed-in entries render bold.
const emphasizedLeading = 2

// PrimaryLinks returns the ordered link set for route, sess and layout.
func PrimaryLinks(route string, sess *session.Session, layout Layout) []Entry {
	policy := signedOutPolicy
	if sess != nil {
		policy = signedInPolicy
	}
	entries := make([]Entry, 0, len(policy))
	for _, row := range policy {
		if layout == LayoutDesktop && !row.desktop {
			continue
		}
		entry := buildEntry(row.id, route, sess)
		if sess != nil && len(entries) < emphasizedLeading {
			entry.Emphasis = true
		}
		entries = append(entries, entry)
	}
	return entries
}

func buildEntry(id EntryID, route string, sess *session.Session) Entry {
	def := entryDefinitions[id]
	entry := Entry{ID: id, Kind: def.kind, LabelKey: def.labelKey}
	destination, err := def.destination(sess)
	if err != nil {
		entry.Broken = true
		entry.Err = err
		return entry
	}
	entry.Destination = destination
	entry.Active = def.activeAware && IsActive(route, destination)
	return entry
}

// IsActive reports whether destination is the current route. Comparison is an
// exact string match.
func IsActive(route, destination string) bool {
	return destination != "" && route == destination
}

// EntryIDs returns the ids of entries in order.
func EntryIDs(entries []Entry) []EntryID {
	ids := make([]EntryID, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}

// BrokenEntries returns the entries that could not be built.
func BrokenEntries(entries []Entry) []Entry {
	var broken []Entry
	for _, entry := range entries {
		if entry.Broken {
			broken = append(broken, entry)
		}
	}
	return broken
}
