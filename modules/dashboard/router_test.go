package dashboard_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/dashgate/modules/dashboard"
	"github.com/flowlytix/dashgate/pkg/sessionstore"
)

const (
	adminEmail  = "admin@flowlytix.com"
	adminSecret = "admin"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(ctx context.Context, kind dashboard.NotifyKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, string(kind)+": "+message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func newTestApp(t *testing.T, opts ...dashboard.AppOption) *dashboard.App {
	t.Helper()

	cfg := dashboard.Config{
		Environment:      "test",
		SessionNamespace: "test",
		AdminEmail:       adminEmail,
		AdminSecret:      adminSecret,
	}

	opts = append([]dashboard.AppOption{
		dashboard.WithSessionBackend(sessionstore.NewMemoryBackend()),
	}, opts...)

	app, err := dashboard.New(context.Background(), cfg, nil, opts...)
	require.NoError(t, err)
	require.NoError(t, app.Controller().Initialize(context.Background()))
	return app
}

func doForm(t *testing.T, handler http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func doGet(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_RedirectsUnauthenticated(t *testing.T) {
	router := newTestApp(t).Router()

	for _, path := range []string{"/", "/api/v1/session", "/api/v1/subscriptions/summary"} {
		rec := doGet(t, router, path)
		assert.Equal(t, http.StatusSeeOther, rec.Code, "path %s", path)
		assert.Equal(t, "/auth/login", rec.Header().Get("Location"), "path %s", path)
	}
}

func TestRouter_PublicPaths(t *testing.T) {
	router := newTestApp(t).Router()

	rec := doGet(t, router, "/auth/login")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")

	rec = doGet(t, router, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestRouter_LoginFlow(t *testing.T) {
	app := newTestApp(t)
	router := app.Router()

	rec := doForm(t, router, "/auth/login", url.Values{
		"email":    {adminEmail},
		"password": {adminSecret},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	// Protected content now renders, wrapped in the dashboard shell.
	rec = doGet(t, router, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "dashboard-shell")
	assert.Contains(t, body, adminEmail)
}

func TestRouter_LoginRejected(t *testing.T) {
	notifier := &recordingNotifier{}
	app := newTestApp(t, dashboard.WithNotifier(notifier))
	router := app.Router()

	rec := doForm(t, router, "/auth/login", url.Values{
		"email":    {"x@x.com"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))

	// The login page surfaces the failure inline.
	rec = doGet(t, router, "/auth/login")
	assert.Contains(t, rec.Body.String(), "invalid credentials")

	assert.Equal(t, []string{"error: Invalid credentials"}, notifier.all())

	// Still gated.
	rec = doGet(t, router, "/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRouter_LogoutFlow(t *testing.T) {
	app := newTestApp(t)
	router := app.Router()

	doForm(t, router, "/auth/login", url.Values{
		"email":    {adminEmail},
		"password": {adminSecret},
	})
	require.True(t, app.Controller().Current().IsAuthenticated())

	rec := doForm(t, router, "/auth/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login", rec.Header().Get("Location"))
	assert.False(t, app.Controller().Current().IsAuthenticated())

	// Logout is idempotent, also over HTTP.
	rec = doForm(t, router, "/auth/logout", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	rec = doGet(t, router, "/")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRouter_SessionEndpoint(t *testing.T) {
	app := newTestApp(t)
	router := app.Router()

	doForm(t, router, "/auth/login", url.Values{
		"email":    {adminEmail},
		"password": {adminSecret},
	})

	rec := doGet(t, router, "/api/v1/session")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			Status string `json:"status"`
			User   *struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "authenticated", payload.Data.Status)
	require.NotNil(t, payload.Data.User)
	assert.Equal(t, adminEmail, payload.Data.User.Email)
	assert.Equal(t, "admin", payload.Data.User.Role)
}

func TestRouter_SubscriptionSummary(t *testing.T) {
	app := newTestApp(t, dashboard.WithSummaryProvider(
		dashboard.SummaryProviderFunc(func(ctx context.Context) (dashboard.SubscriptionSummary, error) {
			return dashboard.SubscriptionSummary{TotalActive: 3, Currency: "EUR"}, nil
		}),
	))
	router := app.Router()

	doForm(t, router, "/auth/login", url.Values{
		"email":    {adminEmail},
		"password": {adminSecret},
	})

	rec := doGet(t, router, "/api/v1/subscriptions/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data dashboard.SubscriptionSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, 3, payload.Data.TotalActive)
	assert.Equal(t, "EUR", payload.Data.Currency)
}

// The layout decision is path-driven only: an authenticated visit to an
// auth-flow path still renders without the dashboard shell.
func TestRouter_AuthFlowPathStaysBareWhenAuthenticated(t *testing.T) {
	app := newTestApp(t)
	router := app.Router()

	doForm(t, router, "/auth/login", url.Values{
		"email":    {adminEmail},
		"password": {adminSecret},
	})
	require.True(t, app.Controller().Current().IsAuthenticated())

	rec := doGet(t, router, "/auth/login")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "dashboard-shell")
}

func TestRouter_SessionSurvivesRestart(t *testing.T) {
	backend := sessionstore.NewMemoryBackend()

	first := newTestApp(t, dashboard.WithSessionBackend(backend))
	doForm(t, first.Router(), "/auth/login", url.Values{
		"email":    {adminEmail},
		"password": {adminSecret},
	})
	require.True(t, first.Controller().Current().IsAuthenticated())

	// A second app over the same backend restores the session on startup.
	second := newTestApp(t, dashboard.WithSessionBackend(backend))
	rec := doGet(t, second.Router(), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
}
