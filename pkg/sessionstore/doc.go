// Package sessionstore mirrors the dashboard's single session into a
// namespaced key-value backend so it survives process restarts.
//
// Two keys are used per namespace: one for the opaque credential token and
// one for the JSON-serialized user profile. Either key missing means no
// session. Malformed payloads and unavailable backends degrade to "no
// session" — they are logged, never surfaced as errors to the auth flow.
//
// Backends: MemoryBackend (volatile, tests), FileBackend (local durable
// store), RedisBackend (hosted deployments), NoopBackend (no durable storage
// available; every operation degrades silently).
package sessionstore
