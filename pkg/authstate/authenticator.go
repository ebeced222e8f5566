package authstate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator verifies an identifier/secret pair and produces the profile
// and credential token for a new session. Implementations must return
// ErrInvalidCredentials (possibly wrapped) for rejected pairs; any other
// error is treated as an infrastructure failure.
type Authenticator interface {
	Authenticate(ctx context.Context, identifier, secret string) (UserProfile, string, error)
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(ctx context.Context, identifier, secret string) (UserProfile, string, error)

func (f AuthenticatorFunc) Authenticate(ctx context.Context, identifier, secret string) (UserProfile, string, error) {
	return f(ctx, identifier, secret)
}

// StaticAuthenticator accepts exactly one identifier/secret pair and fails
// every other combination. It stands in for a remote authentication service
// in development and tests; the secret is held as a bcrypt hash so the
// comparison path matches a real deployment.
type StaticAuthenticator struct {
	identifier string
	secretHash []byte
	profile    UserProfile
}

// NewStaticAuthenticator builds an authenticator for the given pair. The
// returned profile is based on the template with ID and LastLoginAt filled
// per login.
func NewStaticAuthenticator(identifier, secret string, profile UserProfile) (*StaticAuthenticator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash static secret: %w", err)
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.Email == "" {
		profile.Email = identifier
	}

	return &StaticAuthenticator{
		identifier: identifier,
		secretHash: hash,
		profile:    profile,
	}, nil
}

// Authenticate returns a generic ErrInvalidCredentials for any failure so
// callers cannot distinguish a wrong identifier from a wrong secret.
func (a *StaticAuthenticator) Authenticate(ctx context.Context, identifier, secret string) (UserProfile, string, error) {
	if identifier != a.identifier {
		// Burn a bcrypt comparison anyway so both failure paths cost the same.
		_ = bcrypt.CompareHashAndPassword(a.secretHash, []byte(secret))
		return UserProfile{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(a.secretHash, []byte(secret)); err != nil {
		return UserProfile{}, "", ErrInvalidCredentials
	}

	profile := a.profile
	profile.LastLoginAt = time.Now().UTC()

	token, err := generateToken()
	if err != nil {
		return UserProfile{}, "", err
	}

	return profile, token, nil
}
