package navigation

import "github.com/louisbranch/navshell/internal/services/navshell/session"

// AvatarSize is the rendered width and height of the account trigger image.
const AvatarSize = 50

// AvatarResolver maps a session identity to an image URL.
type AvatarResolver func(session.Session) string

// AccountMenu is the desktop dropdown holding account-scoped actions.
type AccountMenu struct {
	Visible   bool
	Expanded  bool
	AvatarURL string
	AvatarAlt string
	Items     []Entry
}

var accountMenuPolicy = []EntryID{EntrySettings, EntryLogout}

// BuildAccountMenu returns the account menu for the inputs. The menu is only
// visible on desktop layouts with a session; expanded is the menu's own state.
func BuildAccountMenu(route string, sess *session.Session, layout Layout, expanded bool, avatar AvatarResolver) AccountMenu {
	if sess == nil || layout != LayoutDesktop {
		return AccountMenu{}
	}
	menu := AccountMenu{
		Visible:   true,
		Expanded:  expanded,
		AvatarAlt: sess.Label(),
		Items:     make([]Entry, 0, len(accountMenuPolicy)),
	}
	if avatar != nil {
		menu.AvatarURL = avatar(*sess)
	}
	for _, id := range accountMenuPolicy {
		menu.Items = append(menu.Items, buildEntry(id, route, sess))
	}
	return menu
}
