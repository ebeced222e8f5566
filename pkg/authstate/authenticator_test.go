package authstate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/dashgate/pkg/authstate"
)

func TestStaticAuthenticator(t *testing.T) {
	ctx := context.Background()
	auth, err := authstate.NewStaticAuthenticator(adminEmail, adminSecret, authstate.UserProfile{
		DisplayName: "Admin",
		Role:        "admin",
	})
	require.NoError(t, err)

	t.Run("accepts the configured pair", func(t *testing.T) {
		profile, token, err := auth.Authenticate(ctx, adminEmail, adminSecret)
		require.NoError(t, err)
		assert.Equal(t, "admin", profile.Role)
		assert.Equal(t, adminEmail, profile.Email)
		assert.False(t, profile.LastLoginAt.IsZero())
		assert.NotEmpty(t, token)
	})

	t.Run("fresh token per login", func(t *testing.T) {
		_, first, err := auth.Authenticate(ctx, adminEmail, adminSecret)
		require.NoError(t, err)
		_, second, err := auth.Authenticate(ctx, adminEmail, adminSecret)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("rejects wrong secret", func(t *testing.T) {
		_, _, err := auth.Authenticate(ctx, adminEmail, "nope")
		assert.ErrorIs(t, err, authstate.ErrInvalidCredentials)
	})

	t.Run("rejects unknown identifier", func(t *testing.T) {
		_, _, err := auth.Authenticate(ctx, "x@x.com", adminSecret)
		assert.ErrorIs(t, err, authstate.ErrInvalidCredentials)
	})
}

func TestUserProfile_HasPermission(t *testing.T) {
	profile := authstate.UserProfile{Permissions: []string{"dashboard.view"}}
	assert.True(t, profile.HasPermission("dashboard.view"))
	assert.False(t, profile.HasPermission("subscriptions.manage"))
}
