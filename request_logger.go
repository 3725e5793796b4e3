package accountkit

import (
	"fmt"
	"log/slog"
)

// RequestLogger is the interface used by the client for tracing HTTP
// requests and errors. Implement this interface to integrate with your
// logging library and supply the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger used when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// SlogLogger is a [RequestLogger] backed by [log/slog]. The zero value logs
// through [slog.Default].
type SlogLogger struct {
	Logger *slog.Logger
}

func (l *SlogLogger) Errorf(format string, v ...any) {
	l.logger().Error(fmt.Sprintf(format, v...))
}

func (l *SlogLogger) Warnf(format string, v ...any) {
	l.logger().Warn(fmt.Sprintf(format, v...))
}

func (l *SlogLogger) Debugf(format string, v ...any) {
	l.logger().Debug(fmt.Sprintf(format, v...))
}

func (l *SlogLogger) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
