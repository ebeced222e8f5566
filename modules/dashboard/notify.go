package dashboard

import (
	"context"
	"log/slog"

	"github.com/flowlytix/dashgate/pkg/logger"
)

// Notifier is the notification surface collaborator: the dashboard decides
// when to notify, never how the notification is presented.
type Notifier interface {
	Notify(ctx context.Context, kind NotifyKind, message string)
}

// NotifyKind distinguishes notification severities.
type NotifyKind string

const (
	NotifyInfo  NotifyKind = "info"
	NotifyError NotifyKind = "error"
)

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, kind NotifyKind, message string)

func (f NotifierFunc) Notify(ctx context.Context, kind NotifyKind, message string) {
	f(ctx, kind, message)
}

// logNotifier is the default surface: notifications become log records.
type logNotifier struct {
	log *slog.Logger
}

func (n logNotifier) Notify(ctx context.Context, kind NotifyKind, message string) {
	level := slog.LevelInfo
	if kind == NotifyError {
		level = slog.LevelWarn
	}
	n.log.Log(ctx, level, message, logger.Component("dashboard"), slog.String("kind", string(kind)))
}
