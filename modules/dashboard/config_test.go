package dashboard_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/dashgate/modules/dashboard"
)

func TestLoadRoutes_Defaults(t *testing.T) {
	routes, err := dashboard.LoadRoutes("")
	require.NoError(t, err)

	assert.Contains(t, routes.Public, "/auth/login")
	assert.Contains(t, routes.Public, "/healthz")
	assert.Equal(t, []string{"/auth"}, routes.AuthPrefixes)
	assert.Equal(t, "/auth/login", routes.LoginPath)
}

func TestLoadRoutes_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	content := "public:\n  - /signin\n  - /status\nauth_prefixes:\n  - /signin\nlogin_path: /signin\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	routes, err := dashboard.LoadRoutes(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/signin", "/status"}, routes.Public)
	assert.Equal(t, []string{"/signin"}, routes.AuthPrefixes)
	assert.Equal(t, "/signin", routes.LoginPath)
}

func TestLoadRoutes_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("login_path: /signin\n"), 0o600))

	routes, err := dashboard.LoadRoutes(path)
	require.NoError(t, err)
	assert.Equal(t, "/signin", routes.LoginPath)
	assert.Contains(t, routes.Public, "/auth/login")
}

func TestLoadRoutes_MissingFile(t *testing.T) {
	_, err := dashboard.LoadRoutes(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
