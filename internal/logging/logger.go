// Package logging defines the structured-logging interface used across
// staffdesk. The production implementation wraps log/slog and writes JSON
// to stderr so records never mix with the console prompt on stdout.
//
// Every component tags its records with a "module" attribute (sequencer,
// assertion, session, cli, grpc_server). Login records carry the attempt
// fields:
//
//	attempt_id   uuid of the sign-in attempt, shared by all its stages
//	path         password or biometric
//	stage        idle, connecting, linking, scanning, authenticated, ...
//	error_kind   classified failure, e.g. INVALID_CREDENTIALS or CANCELLED
//
// Passwords, challenges and credential ids are never logged.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "login stage", "attempt_id", id, "stage", stage)
type Logger interface {
	// Debug logs fine-grained progress, e.g. ignored timer events.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
