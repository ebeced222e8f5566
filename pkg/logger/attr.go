package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records the navigation path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Status records the auth status under the key "status".
func Status(s any) slog.Attr {
	if s == nil {
		return slog.Attr{}
	}
	return slog.Any("status", s)
}
