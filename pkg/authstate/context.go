package authstate

import "context"

type stateContextKey struct{}

// WithState adds an auth state snapshot to the context.
func WithState(ctx context.Context, state State) context.Context {
	return context.WithValue(ctx, stateContextKey{}, state)
}

// FromContext retrieves the auth state snapshot from the context.
func FromContext(ctx context.Context) (State, bool) {
	state, ok := ctx.Value(stateContextKey{}).(State)
	return state, ok
}

// UserFromContext retrieves the authenticated user's profile from the
// context, if any.
func UserFromContext(ctx context.Context) (UserProfile, bool) {
	state, ok := FromContext(ctx)
	if !ok || !state.IsAuthenticated() {
		return UserProfile{}, false
	}
	return state.Session.User, true
}
