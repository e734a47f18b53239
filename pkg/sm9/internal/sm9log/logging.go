// Package sm9log adapts the teacher's structured-logging wrapper to the SM9
// scheme layer: a minimal slog-backed Logger interface, small enough that a
// caller with stricter redaction requirements can swap in their own
// implementation, plus a Redacted helper so secret-derived values (ds, de,
// session keys, KDF output) are never accidentally logged in the clear.
package sm9log

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger defines the subset of slog functionality the SM9 packages use. It
// is intentionally small so applications can provide their own
// implementation for testing or redaction policies.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New returns a Logger backed by the provided slog.Logger. Passing nil binds
// to slog.Default().
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

var defaultLogger = New(nil)

// Default returns the package-wide fallback logger used by call sites that
// were not handed an explicit Logger (internal retry/error diagnostics that
// have no caller-supplied logging channel to report through).
func Default() Logger { return defaultLogger }

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted marks attributes that contain sensitive information. Callers must
// avoid logging raw secrets; this attribute is a reminder that the value was
// intentionally removed.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}
