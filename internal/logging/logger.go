// Package logging defines the logging contract used across ContactKeeper
// and a structured implementation backed by zerolog.
package logging

import "context"

// Logger is the minimal structured-logging surface the application depends
// on. args are alternating key/value pairs.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
