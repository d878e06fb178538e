package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// InitLogger installs the configured handler as the process-wide default.
func InitLogger(config Config) {
	InitLoggerWithWriter(config, os.Stdout)
}

// InitLoggerWithWriter is InitLogger with an explicit sink, for tests.
func InitLoggerWithWriter(config Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     config.LogLevel(),
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	if config.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(config.BaseAttributes())

	slog.SetDefault(slog.New(handler))
}

// WithModule returns the default logger tagged with a module attribute.
func WithModule(name string) *slog.Logger {
	return slog.Default().With(AttrKeyModule, name)
}

// GenerateRequestID creates a new UUID for tracing requests.
func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID returns a new context containing the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID extracts the request ID from the context, empty when absent.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns a logger that includes the request_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id := GetRequestID(ctx); id != "" {
		return slog.Default().With(AttrKeyRequestID, id)
	}
	return slog.Default()
}

// Convenience wrappers around the default logger.

func Debug(msg string, args ...any) { slog.Debug(msg, args...) }
func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
