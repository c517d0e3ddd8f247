package navigation

import (
	"reflect"
	"testing"

	"github.com/louisbranch/navshell/internal/services/navshell/session"
)

func staticAvatar(s session.Session) string { return "/avatars/" + s.UserID + ".svg" }

func TestAccountMenuDesktopSignedIn(t *testing.T) {
	t.Parallel()

	menu := BuildAccountMenu("/settings", alice(), LayoutDesktop, false, staticAvatar)
	if !menu.Visible {
		t.Fatal("menu.Visible = false, want true")
	}
	if got, want := EntryIDs(menu.Items), []EntryID{EntrySettings, EntryLogout}; !reflect.DeepEqual(got, want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	if !menu.Items[0].Active {
		t.Fatal("settings item not active on /settings")
	}
	if menu.Items[1].Kind != EntryAction {
		t.Fatal("logout item is not an action")
	}
	if menu.AvatarURL != "/avatars/u1.svg" {
		t.Fatalf("AvatarURL = %q", menu.AvatarURL)
	}
	if menu.AvatarAlt != "Alice" {
		t.Fatalf("AvatarAlt = %q, want %q", menu.AvatarAlt, "Alice")
	}
}

func TestAccountMenuHiddenWithoutSessionOrOnMobile(t *testing.T) {
	t.Parallel()

	if menu := BuildAccountMenu("/", nil, LayoutDesktop, true, staticAvatar); menu.Visible || len(menu.Items) != 0 {
		t.Fatalf("signed-out menu = %+v, want hidden", menu)
	}
	if menu := BuildAccountMenu("/", alice(), LayoutMobile, true, staticAvatar); menu.Visible || len(menu.Items) != 0 {
		t.Fatalf("mobile menu = %+v, want hidden", menu)
	}
}

func TestAccountMenuKeepsOwnExpansionState(t *testing.T) {
	t.Parallel()

	if !BuildAccountMenu("/", alice(), LayoutDesktop, true, nil).Expanded {
		t.Fatal("Expanded = false, want true")
	}
	if BuildAccountMenu("/", alice(), LayoutDesktop, false, nil).Expanded {
		t.Fatal("Expanded = true, want false")
	}
}
