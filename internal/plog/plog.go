// Package plog is a thin wrapper over go.uber.org/zap, giving gridpave's
// re-rooting, mincing and approximation drivers a single place to emit
// structured, leveled diagnostics without importing zap directly
// throughout the tree. It is never consulted on the hot per-cell
// recursion path — only at operation entry/exit, the same boundary the
// teacher reserves "Complexity:" doc comments for.
package plog

import "go.uber.org/zap"

// Logger wraps a *zap.Logger so call sites depend on this package's
// narrower surface rather than zap's full API.
type Logger struct {
	z *zap.Logger
}

// NewDevelopment returns a Logger suitable for local development: human
// readable, debug level enabled.
func NewDevelopment() *Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// NewProduction returns a Logger suitable for production use: JSON
// encoded, info level and above.
func NewProduction() *Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, used as the default
// when a caller does not configure one.
func Nop() *Logger {
	return &Logger{z: zap.NewNop()}
}

// Debug logs at debug level with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Debug(msg, fields...)
}

// Info logs at info level with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Info(msg, fields...)
}

// Warn logs at warn level with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Warn(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil || l.z == nil {
		return nil
	}
	return l.z.Sync()
}
