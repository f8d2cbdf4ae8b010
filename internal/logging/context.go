package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithBrowserID creates a child logger with a browser_id field
func WithBrowserID(ctx context.Context, browserID int32) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Int32("browser_id", browserID).Logger()
	return WithContext(ctx, childLogger)
}

// WithLaunchID creates a child logger with a launch_id field
func WithLaunchID(ctx context.Context, launchID uint64) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Uint64("launch_id", launchID).Logger()
	return WithContext(ctx, childLogger)
}

// WithURL creates a child logger with a url field
func WithURL(ctx context.Context, url string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("url", url).Logger()
	return WithContext(ctx, childLogger)
}
