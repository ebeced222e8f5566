package authstate

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// generateToken creates a cryptographically secure opaque credential token.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
