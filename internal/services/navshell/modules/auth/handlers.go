package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/louisbranch/navshell/internal/platform/id"
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	apperrors "github.com/louisbranch/navshell/internal/services/navshell/platform/errors"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/pagerender"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/weberror"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/storage"
	"github.com/louisbranch/navshell/internal/services/navshell/templates"
)

var errSessionsUnavailable = apperrors.EK(apperrors.KindUnavailable, "error.session_unavailable", "sessions are not configured")

type handlers struct {
	deps  module.Dependencies
	now   func() time.Time
	newID func() (string, error)
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps, now: time.Now, newID: id.NewID}
}

func (h handlers) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get(routepath.NextQueryKey)
	if pagerender.ResolveSession(r, h.deps).Session != nil {
		httpx.WriteRedirect(w, r, routepath.SafeNext(next))
		return
	}
	h.writeForm(w, r, http.StatusOK, templates.AuthFormView{Mode: templates.AuthLogin, Next: next})
}

func (h handlers) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "error.bad_request", err), h.deps)
		return
	}
	if h.deps.Sessions == nil || h.deps.Users == nil {
		weberror.WriteModuleError(w, r, errSessionsUnavailable, h.deps)
		return
	}
	view := templates.AuthFormView{
		Mode:     templates.AuthLogin,
		Next:     r.PostFormValue(routepath.NextQueryKey),
		Username: normalizeUsername(r.PostFormValue("username")),
	}
	user, err := h.deps.Users.GetUserByUsername(r.Context(), view.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			view.ErrorKey = "error.unknown_user"
			h.writeForm(w, r, http.StatusUnauthorized, view)
			return
		}
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "error.session_unavailable", err), h.deps)
		return
	}
	h.signIn(w, r, user, view.Next)
}

func (h handlers) handleRegisterGet(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get(routepath.NextQueryKey)
	if pagerender.ResolveSession(r, h.deps).Session != nil {
		httpx.WriteRedirect(w, r, routepath.SafeNext(next))
		return
	}
	h.writeForm(w, r, http.StatusOK, templates.AuthFormView{Mode: templates.AuthRegister, Next: next})
}

func (h handlers) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "error.bad_request", err), h.deps)
		return
	}
	if h.deps.Sessions == nil || h.deps.Users == nil {
		weberror.WriteModuleError(w, r, errSessionsUnavailable, h.deps)
		return
	}
	view := templates.AuthFormView{
		Mode:        templates.AuthRegister,
		Next:        r.PostFormValue(routepath.NextQueryKey),
		Username:    normalizeUsername(r.PostFormValue("username")),
		DisplayName: r.PostFormValue("display_name"),
	}
	if err := validateUsername(view.Username); err != nil {
		view.ErrorKey = apperrors.LocalizationKey(err)
		h.writeForm(w, r, apperrors.HTTPStatus(err), view)
		return
	}

	userID, err := h.newID()
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	user := storage.User{
		ID:          userID,
		Username:    view.Username,
		DisplayName: normalizeDisplayName(view.DisplayName, view.Username),
		CreatedAt:   h.now().UTC(),
	}
	if err := h.deps.Users.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			view.ErrorKey = "error.username_taken"
			h.writeForm(w, r, http.StatusConflict, view)
			return
		}
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "error.session_unavailable", err), h.deps)
		return
	}
	h.deps.Logf(r, "user registered user_id=%s username=%s", user.ID, user.Username)
	h.signIn(w, r, user, view.Next)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if h.deps.Sessions == nil {
		weberror.WriteModuleError(w, r, errSessionsUnavailable, h.deps)
		return
	}
	if err := h.deps.Sessions.SignOut(r.Context(), w, r); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "error.session_unavailable", err), h.deps)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Home)
}

func (h handlers) signIn(w http.ResponseWriter, r *http.Request, user storage.User, next string) {
	if _, err := h.deps.Sessions.SignIn(r.Context(), w, r, user); err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindUnavailable, "error.session_unavailable", err), h.deps)
		return
	}
	httpx.WriteRedirect(w, r, routepath.SafeNext(next))
}

func (h handlers) writeForm(w http.ResponseWriter, r *http.Request, status int, view templates.AuthFormView) {
	loc, _ := navi18n.ResolveLocalizer(w, r)
	view.Loc = loc
	titleKey := "page.login.title"
	if view.Mode == templates.AuthRegister {
		titleKey = "page.register.title"
	}
	page := pagerender.ModulePage{
		Title:      loc.Sprintf(titleKey),
		StatusCode: status,
		Fragment:   templates.AuthForm(view),
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		h.deps.Logf(r, "write auth form failed err=%v", err)
	}
}
