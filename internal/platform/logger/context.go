package logger

import (
	"context"
	"log/slog"
)

// loggerContextKey is the context key type for logger values. A private
// struct type prevents collisions with keys from other packages.
type loggerContextKey struct{}

// WithLogger returns a copy of ctx carrying the given logger. Handlers
// and middleware use this to hand request-scoped loggers to lower layers.
// Panics if logger is nil.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or nil if none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	if l, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok {
		return l
	}
	return nil
}

// FromContextOrDefault returns the logger stored in ctx, falling back to
// def when ctx is nil or carries no logger.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if l := FromContext(ctx); l != nil {
		return l
	}
	return def
}
