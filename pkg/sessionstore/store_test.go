package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/dashgate/pkg/authstate"
	"github.com/flowlytix/dashgate/pkg/sessionstore"
)

func testSession() *authstate.Session {
	return &authstate.Session{
		User: authstate.UserProfile{
			ID:          uuid.New(),
			Email:       "admin@flowlytix.com",
			DisplayName: "Admin",
			Role:        "admin",
			Permissions: []string{"dashboard.view", "subscriptions.manage"},
			LastLoginAt: time.Now().UTC().Truncate(time.Second),
		},
		Token: "opaque-credential-token",
	}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := sessionstore.New(sessionstore.NewMemoryBackend())

	original := testSession()
	require.NoError(t, store.Save(ctx, original))

	loaded := store.Load(ctx)
	require.NotNil(t, loaded)
	assert.Equal(t, original.User.ID, loaded.User.ID)
	assert.Equal(t, original.User.Email, loaded.User.Email)
	assert.Equal(t, original.Token, loaded.Token)
	assert.Equal(t, original.User.Role, loaded.User.Role)
	assert.Equal(t, original.User.Permissions, loaded.User.Permissions)
	assert.True(t, original.User.LastLoginAt.Equal(loaded.User.LastLoginAt))
}

func TestStore_LoadEmpty(t *testing.T) {
	store := sessionstore.New(sessionstore.NewMemoryBackend())
	assert.Nil(t, store.Load(context.Background()))
}

func TestStore_LoadMalformedProfile(t *testing.T) {
	ctx := context.Background()
	backend := sessionstore.NewMemoryBackend()
	store := sessionstore.New(backend, sessionstore.WithNamespace("test"))

	require.NoError(t, backend.Set(ctx, "test:auth_token", []byte("token")))
	require.NoError(t, backend.Set(ctx, "test:user_data", []byte("{not json")))

	assert.Nil(t, store.Load(ctx))
}

func TestStore_LoadMissingToken(t *testing.T) {
	ctx := context.Background()
	backend := sessionstore.NewMemoryBackend()
	store := sessionstore.New(backend, sessionstore.WithNamespace("test"))

	// Only the profile key present: no session.
	require.NoError(t, backend.Set(ctx, "test:user_data", []byte(`{"email":"a@b.c"}`)))

	assert.Nil(t, store.Load(ctx))
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	backend := sessionstore.NewMemoryBackend()
	store := sessionstore.New(backend)

	require.NoError(t, store.Save(ctx, testSession()))
	require.Equal(t, 2, backend.Len())

	require.NoError(t, store.Clear(ctx))
	assert.Equal(t, 0, backend.Len())
	assert.Nil(t, store.Load(ctx))

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear(ctx))
}

func TestStore_NoopBackendDegradesSilently(t *testing.T) {
	ctx := context.Background()
	store := sessionstore.New(sessionstore.NewNoopBackend())

	assert.Nil(t, store.Load(ctx))
	assert.NoError(t, store.Save(ctx, testSession()))
	assert.NoError(t, store.Clear(ctx))
	assert.Nil(t, store.Load(ctx))
}

func TestStore_NamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	backend := sessionstore.NewMemoryBackend()

	first := sessionstore.New(backend, sessionstore.WithNamespace("one"))
	second := sessionstore.New(backend, sessionstore.WithNamespace("two"))

	require.NoError(t, first.Save(ctx, testSession()))

	assert.NotNil(t, first.Load(ctx))
	assert.Nil(t, second.Load(ctx))
}
