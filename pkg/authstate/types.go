package authstate

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Status is the controller's position in the auth state machine.
type Status string

const (
	// StatusLoading is the transient state before Initialize completes and
	// while a Login attempt is in flight.
	StatusLoading Status = "loading"

	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticated   Status = "authenticated"
)

// UserProfile describes the authenticated user. It is immutable once
// constructed for a login and replaced wholesale on the next login.
type UserProfile struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions,omitempty"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// HasPermission reports whether the profile carries the given permission.
func (p UserProfile) HasPermission(perm string) bool {
	return slices.Contains(p.Permissions, perm)
}

// Session is the authenticated user's profile plus the credential token.
// It exists only while logged in.
type Session struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// State is a snapshot of the controller's auth state. Err holds the last
// login failure message, empty when there is none.
type State struct {
	Session *Session
	Status  Status
	Err     string
}

// IsAuthenticated reports whether the snapshot carries a live session.
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.Session != nil
}

// clone returns a deep enough copy for handing to subscribers: the session
// pointer is duplicated so later controller mutations don't leak through.
func (s State) clone() State {
	out := s
	if s.Session != nil {
		sess := *s.Session
		sess.User.Permissions = slices.Clone(s.Session.User.Permissions)
		out.Session = &sess
	}
	return out
}
