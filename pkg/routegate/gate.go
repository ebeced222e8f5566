package routegate

import (
	"io"
	"log/slog"
	"sync"

	"github.com/flowlytix/dashgate/pkg/authstate"
	"github.com/flowlytix/dashgate/pkg/logger"
)

// Decision is the gate's verdict for a (state, path) pair.
type Decision int

const (
	// DecisionPassThrough renders unconditionally: the path is public.
	DecisionPassThrough Decision = iota

	// DecisionLoading renders a placeholder; auth state is still resolving
	// and no redirect may be attempted yet.
	DecisionLoading

	// DecisionRender renders the protected content.
	DecisionRender

	// DecisionRedirect navigates to the login path and renders nothing.
	DecisionRedirect
)

func (d Decision) String() string {
	switch d {
	case DecisionPassThrough:
		return "pass_through"
	case DecisionLoading:
		return "loading"
	case DecisionRender:
		return "render"
	case DecisionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// DefaultLoginPath is where unauthenticated navigation is sent.
const DefaultLoginPath = "/auth/login"

// Gate evaluates render decisions and triggers login redirects through a
// Navigator, at most once per distinct path while unauthenticated.
type Gate struct {
	public    map[string]struct{}
	loginPath string
	nav       Navigator
	log       *slog.Logger

	mu sync.Mutex
	// lastRedirect is the path we already navigated away from during the
	// current unauthenticated stretch; cleared whenever a non-redirect
	// decision is observed.
	lastRedirect string
	redirected   bool
}

// Option configures a Gate during construction.
type Option func(*Gate)

// WithLoginPath overrides the redirect target.
func WithLoginPath(path string) Option {
	return func(g *Gate) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithLogger sets the gate's logger.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gate) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Gate. The public list is matched exactly, not by prefix.
func New(public []string, nav Navigator, opts ...Option) *Gate {
	g := &Gate{
		public:    make(map[string]struct{}, len(public)),
		loginPath: DefaultLoginPath,
		nav:       nav,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, p := range public {
		g.public[p] = struct{}{}
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// LoginPath returns the configured redirect target.
func (g *Gate) LoginPath() string {
	return g.loginPath
}

// IsPublic reports whether the path is on the allow-list (exact match).
func (g *Gate) IsPublic(path string) bool {
	_, ok := g.public[path]
	return ok
}

// Evaluate returns the render decision for the given state and path. It is
// pure: no navigation is triggered.
func (g *Gate) Evaluate(state authstate.State, path string) Decision {
	if g.IsPublic(path) {
		return DecisionPassThrough
	}

	switch state.Status {
	case authstate.StatusLoading:
		return DecisionLoading
	case authstate.StatusAuthenticated:
		return DecisionRender
	default:
		return DecisionRedirect
	}
}

// Observe evaluates and, for a redirect decision, fires the Navigator
// exactly once per (unauthenticated, path) change. Repeated observations
// with unchanged inputs do not re-navigate; the dedup memory resets as soon
// as a non-redirect decision is seen, so a later unauthenticated visit to
// the same path navigates again.
func (g *Gate) Observe(state authstate.State, path string) Decision {
	decision := g.Evaluate(state, path)

	g.mu.Lock()
	switch decision {
	case DecisionRedirect:
		if g.redirected && g.lastRedirect == path {
			g.mu.Unlock()
			return decision
		}
		g.redirected = true
		g.lastRedirect = path
		g.mu.Unlock()

		g.log.Debug("redirecting unauthenticated navigation",
			logger.Component("routegate"),
			logger.Path(path),
		)
		g.nav.NavigateTo(g.loginPath)
		return decision

	default:
		g.redirected = false
		g.lastRedirect = ""
		g.mu.Unlock()
		return decision
	}
}
