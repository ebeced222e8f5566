// Package logger builds configured slog.Logger instances for the dashboard
// process. It exposes a small functional-option factory with development and
// production presets, plus attribute helpers shared across packages so log
// keys stay consistent.
package logger
