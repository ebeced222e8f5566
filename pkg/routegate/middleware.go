package routegate

import (
	"net/http"

	"github.com/flowlytix/dashgate/pkg/authstate"
)

// StateSource yields the current auth state snapshot for a request.
type StateSource func() authstate.State

// Middleware maps gate decisions onto HTTP: public and authenticated
// requests reach the next handler (with the state snapshot on the request
// context), a resolving auth state serves the placeholder, and
// unauthenticated requests get a 303 to the login path.
//
// Per-request redirects bypass Observe's dedup on purpose: every HTTP
// request is its own navigation, so each one is answered individually.
func (g *Gate) Middleware(source StateSource, placeholder http.Handler) func(http.Handler) http.Handler {
	if placeholder == nil {
		placeholder = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("loading"))
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := source()
			ctx := authstate.WithState(r.Context(), state)

			switch g.Evaluate(state, r.URL.Path) {
			case DecisionPassThrough, DecisionRender:
				next.ServeHTTP(w, r.WithContext(ctx))
			case DecisionLoading:
				placeholder.ServeHTTP(w, r.WithContext(ctx))
			case DecisionRedirect:
				http.Redirect(w, r, g.loginPath, http.StatusSeeOther)
			}
		})
	}
}
