package authstate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPAuthenticator verifies credentials against a remote authentication
// endpoint. The endpoint receives a JSON body {"identifier": ..., "secret":
// ...} and responds 200 with {"token": ..., "user": {...}} on success or
// 401 on rejected credentials.
type HTTPAuthenticator struct {
	endpoint string
	client   *http.Client
}

// HTTPAuthenticatorOption configures an HTTPAuthenticator.
type HTTPAuthenticatorOption func(*HTTPAuthenticator)

// WithHTTPClient overrides the HTTP client used for the remote call.
func WithHTTPClient(c *http.Client) HTTPAuthenticatorOption {
	return func(a *HTTPAuthenticator) {
		if c != nil {
			a.client = c
		}
	}
}

// NewHTTPAuthenticator creates an authenticator calling the given endpoint.
func NewHTTPAuthenticator(endpoint string, opts ...HTTPAuthenticatorOption) *HTTPAuthenticator {
	a := &HTTPAuthenticator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type authenticateRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

type authenticateResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// Authenticate performs the remote call. A 401 or 403 maps to
// ErrInvalidCredentials; transport failures and unexpected statuses are
// returned as infrastructure errors, distinct from a credential rejection.
func (a *HTTPAuthenticator) Authenticate(ctx context.Context, identifier, secret string) (UserProfile, string, error) {
	body, err := json.Marshal(authenticateRequest{Identifier: identifier, Secret: secret})
	if err != nil {
		return UserProfile{}, "", fmt.Errorf("failed to encode authenticate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return UserProfile{}, "", fmt.Errorf("failed to build authenticate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return UserProfile{}, "", fmt.Errorf("authenticate call failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var out authenticateResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return UserProfile{}, "", fmt.Errorf("failed to decode authenticate response: %w", err)
		}
		if out.Token == "" {
			return UserProfile{}, "", errors.New("authenticate response missing token")
		}
		return out.User, out.Token, nil

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return UserProfile{}, "", ErrInvalidCredentials

	default:
		return UserProfile{}, "", fmt.Errorf("authenticate call returned unexpected status %d", resp.StatusCode)
	}
}
