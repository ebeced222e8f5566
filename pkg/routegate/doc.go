// Package routegate decides whether a navigated-to path may render protected
// content given the current auth state.
//
// Paths on the public allow-list are matched EXACTLY and always pass,
// whatever the auth status. All other paths render only when authenticated,
// show a loading placeholder while the auth state is still resolving, and
// otherwise trigger a single redirect to the login path.
//
// The exact matching here is deliberately different from the layout
// package's prefix matching; see the layout package docs.
package routegate
