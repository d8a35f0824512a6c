// Package logger configures structured logging for the monitor.
// It wraps log/slog with environment-aware handler selection and
// level parsing.
package logger
