package dashboard

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flowlytix/dashgate/pkg/authstate"
	"github.com/flowlytix/dashgate/pkg/config"
	"github.com/flowlytix/dashgate/pkg/httpserver"
	"github.com/flowlytix/dashgate/pkg/layout"
	"github.com/flowlytix/dashgate/pkg/logger"
	"github.com/flowlytix/dashgate/pkg/routegate"
	"github.com/flowlytix/dashgate/pkg/sessionstore"
)

// App wires the gating core into one runnable dashboard process.
type App struct {
	cfg    Config
	routes Routes
	log    *slog.Logger

	controller *authstate.Controller
	gate       *routegate.Gate
	selector   *layout.Selector
	notifier   Notifier
	summaries  SummaryProvider

	deps appDeps
}

// AppOption overrides a collaborator during construction, mainly for tests.
type AppOption func(*App)

// WithNotifier replaces the log-backed notification surface.
func WithNotifier(n Notifier) AppOption {
	return func(a *App) {
		if n != nil {
			a.notifier = n
		}
	}
}

// WithSummaryProvider replaces the static subscription summary source.
func WithSummaryProvider(p SummaryProvider) AppOption {
	return func(a *App) {
		if p != nil {
			a.summaries = p
		}
	}
}

type appDeps struct {
	backend sessionstore.Backend
	auth    authstate.Authenticator
}

// WithSessionBackend injects a session storage backend, bypassing the
// config-driven selection.
func WithSessionBackend(b sessionstore.Backend) AppOption {
	return func(a *App) {
		a.deps.backend = b
	}
}

// WithAuthenticator injects a credential checker, bypassing the
// config-driven selection.
func WithAuthenticator(auth authstate.Authenticator) AppOption {
	return func(a *App) {
		a.deps.auth = auth
	}
}

// New assembles the dashboard from its config. The context is used only for
// dialing the Redis backend when configured.
func New(ctx context.Context, cfg Config, log *slog.Logger, opts ...AppOption) (*App, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	routes, err := LoadRoutes(cfg.RoutesFile)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		routes:    routes,
		log:       log,
		notifier:  logNotifier{log: log},
		summaries: staticSummaryProvider{},
	}

	for _, opt := range opts {
		opt(a)
	}

	backend := a.deps.backend
	if backend == nil {
		backend, err = newBackend(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	store := sessionstore.New(backend,
		sessionstore.WithNamespace(cfg.SessionNamespace),
		sessionstore.WithLogger(log),
	)

	auth := a.deps.auth
	if auth == nil {
		auth, err = newAuthenticator(cfg)
		if err != nil {
			return nil, err
		}
	}

	a.controller = authstate.New(store, auth, authstate.WithLogger(log))

	// In the HTTP surface navigation happens per request via the gate
	// middleware; the reactive Navigator only records the decision.
	nav := routegate.NavigatorFunc(func(path string) {
		log.Debug("navigation requested",
			logger.Component("dashboard"),
			logger.Path(path),
		)
	})
	a.gate = routegate.New(routes.Public, nav,
		routegate.WithLoginPath(routes.LoginPath),
		routegate.WithLogger(log),
	)

	a.selector = layout.NewSelector(routes.AuthPrefixes...)

	return a, nil
}

func newBackend(ctx context.Context, cfg Config) (sessionstore.Backend, error) {
	switch cfg.SessionBackend {
	case "memory":
		return sessionstore.NewMemoryBackend(), nil
	case "file", "":
		return sessionstore.NewFileBackend(cfg.SessionFile), nil
	case "redis":
		var redisCfg sessionstore.RedisConfig
		if err := config.Load(&redisCfg); err != nil {
			return nil, err
		}
		client, err := sessionstore.ConnectRedis(ctx, redisCfg)
		if err != nil {
			return nil, err
		}
		return sessionstore.NewRedisBackend(client), nil
	case "none":
		return sessionstore.NewNoopBackend(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

func newAuthenticator(cfg Config) (authstate.Authenticator, error) {
	if cfg.AuthEndpoint != "" {
		return authstate.NewHTTPAuthenticator(cfg.AuthEndpoint), nil
	}

	return authstate.NewStaticAuthenticator(cfg.AdminEmail, cfg.AdminSecret, authstate.UserProfile{
		DisplayName: "Administrator",
		Role:        "admin",
		Permissions: []string{"dashboard.view", "subscriptions.manage", "users.manage"},
	})
}

// Controller exposes the auth state controller, e.g. for tests.
func (a *App) Controller() *authstate.Controller {
	return a.controller
}

// Router builds the HTTP surface: gate middleware over everything, the
// layout selector over the pages, and the JSON API behind the gate.
func (a *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(a.gate.Middleware(a.controller.Current, http.HandlerFunc(placeholderPage)))

	r.Group(func(pages chi.Router) {
		pages.Use(a.selector.Middleware(shellMiddleware))
		pages.Get("/", a.indexPage)
		pages.Get(a.routes.LoginPath, a.loginPage)
	})

	r.Post(a.routes.LoginPath, a.handleLogin)
	r.Post("/auth/logout", a.handleLogout)

	r.Route("/api/v1", func(api chi.Router) {
		api.Get("/session", a.handleSession)
		api.Get("/subscriptions/summary", a.handleSubscriptionSummary)
	})

	r.Get("/healthz", httpserver.HealthCheckHandler(context.Background(), a.log))

	return r
}

// Run initializes the auth state from durable storage and serves HTTP until
// the context is cancelled.
func (a *App) Run(ctx context.Context, srvCfg httpserver.Config) error {
	if err := a.controller.Initialize(ctx); err != nil {
		return err
	}

	srv := httpserver.New(srvCfg, httpserver.WithLogger(a.log))
	return srv.Run(ctx, a.Router())
}
