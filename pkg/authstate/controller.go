package authstate

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/flowlytix/dashgate/pkg/logger"
)

// Store is the durable session persistence consumed by the controller. The
// controller owns the in-memory session; the store only mirrors it across
// process restarts.
//
// Load returns nil for a missing, malformed, or unavailable session — never
// an error a caller must handle. Save and Clear may report unexpected
// backend failures; the controller logs and degrades rather than failing
// the auth operation.
type Store interface {
	Load(ctx context.Context) *Session
	Save(ctx context.Context, session *Session) error
	Clear(ctx context.Context) error
}

// Controller owns the process-wide auth state. Construct one at application
// start and inject it by reference into every consumer.
type Controller struct {
	store Store
	auth  Authenticator
	log   *slog.Logger

	mu       sync.Mutex
	state    State
	inFlight bool

	subMu   sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// Option configures a Controller during construction.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a controller in the loading state. Call Initialize before
// consuming the state; loading is a transient initial value only.
func New(store Store, auth Authenticator, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		auth:  auth,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		state: State{Status: StatusLoading},
		subs:  make(map[int]func(State)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Current returns a snapshot of the auth state.
func (c *Controller) Current() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Subscribe registers fn to receive a state snapshot after every transition.
// The returned function unsubscribes. Notifications run synchronously on the
// mutating goroutine, outside the state lock.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Initialize restores the session from the store, exactly once at startup.
// It never returns an error: any internal failure degrades to
// unauthenticated. On return the status is never loading.
func (c *Controller) Initialize(ctx context.Context) error {
	if err := c.begin(); err != nil {
		return err
	}

	session := c.store.Load(ctx)

	if session != nil {
		c.log.Debug("restored persisted session",
			logger.Component("authstate"),
			logger.UserID(session.User.ID),
		)
		c.finish(State{Session: session, Status: StatusAuthenticated})
	} else {
		c.finish(State{Status: StatusUnauthenticated})
	}

	return nil
}

// Login validates credentials via the authenticator, persists the resulting
// session, and transitions to authenticated. On rejection the state becomes
// unauthenticated with Err populated, and the failure is also returned to
// the caller so the UI can react inline.
func (c *Controller) Login(ctx context.Context, identifier, secret string) error {
	if err := c.beginLogin(); err != nil {
		return err
	}

	profile, token, err := c.auth.Authenticate(ctx, identifier, secret)
	if err != nil {
		c.log.Info("login rejected",
			logger.Component("authstate"),
			logger.Error(err),
		)
		c.finish(State{Status: StatusUnauthenticated, Err: err.Error()})
		return err
	}

	session := &Session{User: profile, Token: token}

	// Persistence failures degrade to an in-memory-only session; the user
	// stays logged in for this process lifetime.
	if err := c.store.Save(ctx, session); err != nil {
		c.log.Warn("failed to persist session",
			logger.Component("authstate"),
			logger.Error(err),
		)
	}

	c.log.Info("login succeeded",
		logger.Component("authstate"),
		logger.UserID(profile.ID),
	)
	c.finish(State{Session: session, Status: StatusAuthenticated})
	return nil
}

// Logout clears the store and resets to unauthenticated. It is synchronous,
// unconditional, and idempotent; no network round-trip is involved.
func (c *Controller) Logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Warn("failed to clear persisted session",
			logger.Component("authstate"),
			logger.Error(err),
		)
	}

	c.mu.Lock()
	c.state = State{Status: StatusUnauthenticated}
	snapshot := c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)
}

// ClearError resets the last login error without changing status.
func (c *Controller) ClearError() {
	c.mu.Lock()
	c.state.Err = ""
	snapshot := c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)
}

// begin claims the single-flight slot and moves to loading, preserving the
// last error for Initialize.
func (c *Controller) begin() error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrOperationInFlight
	}
	c.inFlight = true
	c.state.Status = StatusLoading
	snapshot := c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

// beginLogin is begin plus the login-specific transition rules: a live
// session must be logged out first, and a fresh attempt clears the error.
func (c *Controller) beginLogin() error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrOperationInFlight
	}
	if c.state.Status == StatusAuthenticated {
		c.mu.Unlock()
		return ErrAlreadyAuthenticated
	}
	c.inFlight = true
	c.state = State{Status: StatusLoading}
	snapshot := c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

// finish releases the single-flight slot, installs the terminal state, and
// notifies subscribers.
func (c *Controller) finish(next State) {
	c.mu.Lock()
	c.inFlight = false
	c.state = next
	snapshot := c.state.clone()
	c.mu.Unlock()

	c.notify(snapshot)
}

func (c *Controller) notify(snapshot State) {
	c.subMu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
