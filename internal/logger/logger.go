package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

type implLogger struct {
	logger *log.Logger
	level  log.Level
}

// New creates a new Logger instance writing text to stdout
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level, "text")
}

// NewWithWriter creates a Logger writing to w. format is "text" or "json".
func NewWithWriter(w io.Writer, level, format string) Logger {
	lvl := parseLevel(level)

	opts := log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
	}
	if strings.EqualFold(format, "json") {
		opts.Formatter = log.JSONFormatter
	}

	return &implLogger{
		logger: log.NewWithOptions(w, opts),
		level:  lvl,
	}
}

// WithRequestID returns a context whose log lines carry the given request id
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the request id stored in ctx, if any
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func parseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func (l *implLogger) shouldLog(level log.Level) bool {
	return level >= l.level
}

func (l *implLogger) emit(ctx context.Context, level log.Level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}

	if id := RequestID(ctx); id != "" {
		l.logger.Log(level, text, "request_id", id)
		return
	}
	l.logger.Log(level, text)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, log.DebugLevel, msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, log.InfoLevel, msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, log.WarnLevel, msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.emit(ctx, log.ErrorLevel, msg, args)
}

// Helper to format error messages
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
