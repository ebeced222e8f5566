// Package authstate owns the dashboard's single authenticated session and the
// state machine around it.
//
// A Controller holds exactly one State for the whole process: status
// (loading, unauthenticated or authenticated), the current Session when
// authenticated, and the last login error. Status is authenticated if and
// only if a Session is present.
//
// The Controller synchronizes with a durable session store on startup
// (Initialize) and on every mutation (Login, Logout). Credential checking is
// delegated to a pluggable Authenticator so tests and real deployments can
// substitute the backing call without touching the controller.
//
// Allowed transitions:
//
//	loading         -> authenticated | unauthenticated  (Initialize, Login outcome)
//	unauthenticated -> loading                          (Login attempt)
//	authenticated   -> unauthenticated                  (Logout)
//
// A logged-in session is never re-validated in place: re-login requires an
// explicit Logout first. Overlapping Initialize/Login calls are rejected with
// ErrOperationInFlight rather than racing on shared state.
package authstate
