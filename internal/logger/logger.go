// Package logger provides the process-wide structured logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured log fields.
type Fields = logrus.Fields

var defaultLogger = &logrus.Logger{
	Out:       os.Stdout,
	Formatter: new(logrus.JSONFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
	ExitFunc:  os.Exit,
}

// SetLevel parses and applies the minimum log level.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	defaultLogger.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) {
	defaultLogger.SetOutput(w)
}

// Writer returns a writer whose lines are logged at Info level.
// The caller must close it.
func Writer() *io.PipeWriter {
	return defaultLogger.WriterLevel(logrus.InfoLevel)
}

// WithFields returns an entry carrying the given fields.
func WithFields(fields Fields) *logrus.Entry {
	return defaultLogger.WithFields(fields)
}

type requestIDKey struct{}

// ContextWithRequestID returns a copy of ctx carrying the request ID.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// FromContext returns an entry tagged with the request ID from ctx.
func FromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(defaultLogger)
	if id := RequestID(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}

// Debug logs message at Debug level.
func Debug(msg string) {
	defaultLogger.Debugln(msg)
}

// Info logs message at Info level.
func Info(msg string) {
	defaultLogger.Infoln(msg)
}

// Warn logs message at Warn level.
func Warn(msg string) {
	defaultLogger.Warnln(msg)
}

// Error logs errors at Error level.
func Error(err error) {
	defaultLogger.Errorln(err)
}

// Fatal logs errors at Fatal level.
func Fatal(err error) {
	defaultLogger.Fatalln(err)
}
