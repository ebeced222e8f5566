package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/flowlytix/dashgate/pkg/authstate"
	"github.com/flowlytix/dashgate/pkg/logger"
)

const (
	// DefaultNamespace prefixes the storage keys when none is configured.
	DefaultNamespace = "flowlytix"

	tokenKeySuffix   = ":auth_token"
	profileKeySuffix = ":user_data"
)

// Store persists the single session as two namespaced keys in a Backend.
// It implements authstate.Store.
type Store struct {
	backend Backend
	ns      string
	log     *slog.Logger
}

// Option configures a Store during construction.
type Option func(*Store)

// WithNamespace overrides the key namespace.
func WithNamespace(ns string) Option {
	return func(s *Store) {
		if ns != "" {
			s.ns = ns
		}
	}
}

// WithLogger sets the store's logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Store over the given backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		ns:      DefaultNamespace,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) tokenKey() string   { return s.ns + tokenKeySuffix }
func (s *Store) profileKey() string { return s.ns + profileKeySuffix }

// Load reconstructs the persisted session. It returns nil when either key
// is absent, the profile payload is malformed, or the backend is
// unavailable; none of these are errors for the caller.
func (s *Store) Load(ctx context.Context) *authstate.Session {
	token, err := s.backend.Get(ctx, s.tokenKey())
	if err != nil {
		s.logMiss("token", err)
		return nil
	}

	raw, err := s.backend.Get(ctx, s.profileKey())
	if err != nil {
		s.logMiss("profile", err)
		return nil
	}

	var profile authstate.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		s.log.Warn("discarding malformed persisted profile",
			logger.Component("sessionstore"),
			logger.Error(err),
		)
		return nil
	}

	return &authstate.Session{User: profile, Token: string(token)}
}

// Save mirrors the session into the backend. An unavailable backend is a
// silent no-op; other backend failures are returned for the caller to log.
func (s *Store) Save(ctx context.Context, session *authstate.Session) error {
	if session == nil {
		return nil
	}

	raw, err := json.Marshal(session.User)
	if err != nil {
		return err
	}

	if err := s.backend.Set(ctx, s.tokenKey(), []byte(session.Token)); err != nil {
		return s.degrade(err)
	}
	if err := s.backend.Set(ctx, s.profileKey(), raw); err != nil {
		return s.degrade(err)
	}

	return nil
}

// Clear removes both keys. Clearing an absent session is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, s.tokenKey()); err != nil {
		return s.degrade(err)
	}
	if err := s.backend.Delete(ctx, s.profileKey()); err != nil {
		return s.degrade(err)
	}
	return nil
}

// degrade swallows ErrUnavailable so a storage-less environment never
// surfaces errors, per the degradation contract.
func (s *Store) degrade(err error) error {
	if errors.Is(err, ErrUnavailable) {
		return nil
	}
	return err
}

func (s *Store) logMiss(what string, err error) {
	if errors.Is(err, ErrKeyNotFound) || errors.Is(err, ErrUnavailable) {
		return
	}
	s.log.Warn("failed to read persisted session",
		logger.Component("sessionstore"),
		slog.String("key", what),
		logger.Error(err),
	)
}
