// Package layout classifies navigation paths into the bare auth-flow layout
// or the full dashboard shell.
//
// Classification is path-driven only, independent of auth status: an
// authenticated visit to /auth/login still renders bare. Matching is by
// prefix, so /auth/login/step2 is an auth-flow path too. This prefix
// matching is deliberately different from the route gate's exact matching;
// the asymmetry is covered by tests rather than unified.
package layout

import (
	"net/http"
	"strings"
)

// Kind is the layout decision for a path.
type Kind int

const (
	// KindShell wraps the page in the dashboard shell.
	KindShell Kind = iota

	// KindBare renders the page with no surrounding shell.
	KindBare
)

func (k Kind) String() string {
	if k == KindBare {
		return "bare"
	}
	return "shell"
}

// DefaultAuthPrefixes matches the auth-flow pages shipped by the dashboard.
var DefaultAuthPrefixes = []string{"/auth"}

// Selector classifies paths against a fixed set of auth-flow prefixes.
type Selector struct {
	prefixes []string
}

// NewSelector creates a selector with the given prefixes, falling back to
// DefaultAuthPrefixes when none are provided.
func NewSelector(prefixes ...string) *Selector {
	if len(prefixes) == 0 {
		prefixes = DefaultAuthPrefixes
	}
	return &Selector{prefixes: prefixes}
}

// Classify returns KindBare when the path starts with any auth-flow prefix,
// KindShell otherwise.
func (s *Selector) Classify(path string) Kind {
	for _, prefix := range s.prefixes {
		if strings.HasPrefix(path, prefix) {
			return KindBare
		}
	}
	return KindShell
}

// Middleware applies the shell decorator to shell-classified paths and
// leaves auth-flow paths bare. The shell itself is an opaque collaborator;
// this package only decides whether to invoke it.
func (s *Selector) Middleware(shell func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := next
		if shell != nil {
			wrapped = shell(next)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s.Classify(r.URL.Path) == KindBare {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}
