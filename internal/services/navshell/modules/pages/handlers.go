package pages

import (
	"context"
	"errors"
	"net/http"
	"strings"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	apperrors "github.com/louisbranch/navshell/internal/services/navshell/platform/errors"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/pagerender"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/weberror"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
	"github.com/louisbranch/navshell/internal/services/navshell/storage"
	"github.com/louisbranch/navshell/internal/services/navshell/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, _ := navi18n.ResolveLocalizer(w, r)
	view := templates.HomeView{Loc: loc}
	if sess := pagerender.ResolveSession(r, h.deps).Session; sess != nil {
		view.SignedInAs = sess.Label()
	}
	h.writePage(w, r, pagerender.ModulePage{
		Title:    loc.Sprintf("page.home.title"),
		Fragment: templates.HomePage(view),
	})
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.PathValue(routepath.UsernamePathValue))
	user, err := h.lookupProfile(r.Context(), username)
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	loc, _ := navi18n.ResolveLocalizer(w, r)
	displayName := strings.TrimSpace(user.DisplayName)
	if displayName == "" {
		displayName = user.Username
	}
	h.writePage(w, r, pagerender.ModulePage{
		Title: loc.Sprintf("page.profile.title", displayName),
		Fragment: templates.ProfilePage(templates.ProfileView{
			Loc:         loc,
			Username:    user.Username,
			DisplayName: displayName,
			AvatarURL: h.deps.Avatar.URL(session.Session{
				UserID:    user.ID,
				Username:  user.Username,
				AvatarURL: user.AvatarURL,
			}),
			JoinedAt: user.CreatedAt,
		}),
	})
}

func (h handlers) lookupProfile(ctx context.Context, username string) (storage.User, error) {
	if username == "" || routepath.IsReservedSegment(username) || h.deps.Users == nil {
		return storage.User{}, apperrors.EK(apperrors.KindNotFound, "error.not_found", "profile not found")
	}
	user, err := h.deps.Users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.User{}, apperrors.Wrap(apperrors.KindNotFound, "error.not_found", err)
		}
		return storage.User{}, apperrors.Wrap(apperrors.KindUnavailable, "error.internal", err)
	}
	return user, nil
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		h.deps.Logf(r, "write page failed path=%s err=%v", r.URL.Path, err)
	}
}
