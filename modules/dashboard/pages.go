package dashboard

import (
	"fmt"
	"html"
	"net/http"

	"github.com/flowlytix/dashgate/pkg/authstate"
)

// The page rendering here is intentionally minimal: the dashboard shell,
// login form, and placeholder are opaque collaborators as far as the gating
// core is concerned, and these handlers exist to exercise the decisions,
// not to be a frontend.

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// shellMiddleware wraps shell-classified pages in the dashboard chrome.
func shellMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<div id="dashboard-shell"><nav>Flowlytix</nav><main>`))
		next.ServeHTTP(w, r)
		_, _ = w.Write([]byte(`</main></div>`))
	})
}

// placeholderPage renders while the auth state is still resolving.
func placeholderPage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, `<div id="loading">Loading…</div>`)
}

func (a *App) indexPage(w http.ResponseWriter, r *http.Request) {
	user, ok := authstate.UserFromContext(r.Context())
	if !ok {
		// The gate already redirected unauthenticated requests; reaching
		// here without a user means a routing mistake.
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	_, _ = fmt.Fprintf(w, `<h1>Subscriptions</h1><p>Signed in as %s</p>`,
		html.EscapeString(user.Email))
}

func (a *App) loginPage(w http.ResponseWriter, r *http.Request) {
	// The login page renders even for an authenticated visit: the layout
	// decision is path-driven only, and the gate passes /auth/login through
	// in every auth status.
	state := a.controller.Current()

	errBlock := ""
	if state.Err != "" {
		errBlock = fmt.Sprintf(`<p class="error">%s</p>`, html.EscapeString(state.Err))
	}

	writeHTML(w, http.StatusOK, fmt.Sprintf(`<form method="post" action="%s">%s`+
		`<input name="email" type="email" placeholder="Email">`+
		`<input name="password" type="password" placeholder="Password">`+
		`<button type="submit">Sign in</button></form>`,
		html.EscapeString(a.routes.LoginPath), errBlock))
}
