// Package dashboard is the composition root of the Flowlytix dashboard
// process. It wires the auth state controller, session store backend, route
// gate, and layout selector into one chi router plus the cross-cutting
// concerns around them: panic recovery, request IDs, a notification surface,
// and the JSON response shape shared by the API endpoints.
package dashboard
