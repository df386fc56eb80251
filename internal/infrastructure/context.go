package infrastructure

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// GenerateSessionID creates a new unique session ID using UUID v4
func GenerateSessionID() string {
	return uuid.New().String()
}

// WithSessionID adds a session ID to the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDContextKey, sessionID)
}

// ContextWithSessionID creates a new context with a generated session ID
func ContextWithSessionID(ctx context.Context) context.Context {
	return WithSessionID(ctx, GenerateSessionID())
}

// GetSessionID retrieves the session ID from context
func GetSessionID(ctx context.Context) string {
	if sessionID, ok := ctx.Value(SessionIDContextKey).(string); ok {
		return sessionID
	}
	return ""
}

// LoggerWithContext creates a logger that includes the session ID from context
func LoggerWithContext(ctx context.Context) *slog.Logger {
	logger := GetLogger()
	if sessionID := GetSessionID(ctx); sessionID != "" {
		logger = logger.With("session_id", sessionID)
	}
	return logger
}

// WithComponent creates a logger with a component field
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}

// WithError creates a logger with an error field
func WithError(logger *slog.Logger, err error) *slog.Logger {
	if err == nil {
		return logger
	}
	return logger.With("error", err.Error())
}
