package dashboard

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/flowlytix/dashgate/pkg/config"
	"github.com/flowlytix/dashgate/pkg/routegate"
)

// Config holds the dashboard module's settings.
type Config struct {
	Environment string `env:"APP_ENV" envDefault:"development"`

	// SessionBackend selects durable session storage: memory, file, redis,
	// or none. "none" runs without durable storage; the auth flow degrades
	// to an in-memory session for the process lifetime.
	SessionBackend   string `env:"SESSION_BACKEND" envDefault:"file"`
	SessionFile      string `env:"SESSION_FILE" envDefault:".flowlytix/session.json"`
	SessionNamespace string `env:"SESSION_NAMESPACE" envDefault:"flowlytix"`

	// AuthEndpoint switches credential checking to the remote service.
	// Empty means the built-in static pair below, for development only.
	AuthEndpoint string `env:"AUTH_ENDPOINT"`
	AdminEmail   string `env:"AUTH_ADMIN_EMAIL" envDefault:"admin@flowlytix.com"`
	AdminSecret  string `env:"AUTH_ADMIN_SECRET" envDefault:"admin"`

	// RoutesFile optionally points at a YAML route table overriding the
	// built-in public allow-list and auth-flow prefixes.
	RoutesFile string `env:"ROUTES_FILE"`
}

// Routes is the operator-editable route table.
type Routes struct {
	// Public paths bypass the auth gate. Matched exactly.
	Public []string `yaml:"public"`

	// AuthPrefixes select the bare layout. Matched by prefix.
	AuthPrefixes []string `yaml:"auth_prefixes"`

	// LoginPath is where unauthenticated navigation is redirected.
	LoginPath string `yaml:"login_path"`
}

// DefaultRoutes returns the route table shipped with the dashboard.
func DefaultRoutes() Routes {
	return Routes{
		Public: []string{
			"/auth/login",
			"/auth/register",
			"/auth/logout",
			"/healthz",
		},
		AuthPrefixes: []string{"/auth"},
		LoginPath:    routegate.DefaultLoginPath,
	}
}

// LoadRoutes reads the route table from path, falling back to defaults when
// path is empty. A missing file is an error: an operator who points at a
// file expects it to be honored.
func LoadRoutes(path string) (Routes, error) {
	routes := DefaultRoutes()
	if path == "" {
		return routes, nil
	}

	var loaded Routes
	if err := config.LoadYAML(path, &loaded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Routes{}, fmt.Errorf("routes file %s does not exist: %w", path, err)
		}
		return Routes{}, err
	}

	if len(loaded.Public) > 0 {
		routes.Public = loaded.Public
	}
	if len(loaded.AuthPrefixes) > 0 {
		routes.AuthPrefixes = loaded.AuthPrefixes
	}
	if loaded.LoginPath != "" {
		routes.LoginPath = loaded.LoginPath
	}

	return routes, nil
}
