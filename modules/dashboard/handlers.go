package dashboard

import (
	"errors"
	"net/http"

	"github.com/flowlytix/dashgate/pkg/authstate"
	"github.com/flowlytix/dashgate/pkg/logger"
)

func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "bad_request", "malformed form data")
		return
	}

	identifier := r.PostFormValue("email")
	secret := r.PostFormValue("password")

	err := a.controller.Login(r.Context(), identifier, secret)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case errors.Is(err, authstate.ErrAlreadyAuthenticated):
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case errors.Is(err, authstate.ErrInvalidCredentials):
		a.notifier.Notify(r.Context(), NotifyError, "Invalid credentials")
		// The error is kept in the controller state; the login page shows
		// it inline after the redirect.
		http.Redirect(w, r, a.routes.LoginPath, http.StatusSeeOther)

	case errors.Is(err, authstate.ErrOperationInFlight):
		respondError(w, http.StatusConflict, "login_in_flight", "a login attempt is already running")

	default:
		a.log.Error("login failed",
			logger.Component("dashboard"),
			logger.Error(err),
		)
		a.notifier.Notify(r.Context(), NotifyError, "Login failed, try again")
		http.Redirect(w, r, a.routes.LoginPath, http.StatusSeeOther)
	}
}

func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.controller.Logout(r.Context())
	http.Redirect(w, r, a.routes.LoginPath, http.StatusSeeOther)
}

type sessionResponse struct {
	Status string                 `json:"status"`
	User   *authstate.UserProfile `json:"user,omitempty"`
}

func (a *App) handleSession(w http.ResponseWriter, r *http.Request) {
	state, ok := authstate.FromContext(r.Context())
	if !ok {
		state = a.controller.Current()
	}

	resp := sessionResponse{Status: string(state.Status)}
	if state.IsAuthenticated() {
		user := state.Session.User
		resp.User = &user
	}

	respondJSON(w, http.StatusOK, resp)
}

func (a *App) handleSubscriptionSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.summaries.Summary(r.Context())
	if err != nil {
		a.log.Error("failed to load subscription summary",
			logger.Component("dashboard"),
			logger.Error(err),
		)
		respondError(w, http.StatusInternalServerError, "summary_unavailable", "failed to load subscription summary")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
