package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info", "text")

	l.Debug(ctx, "debug message")
	l.Info(ctx, "info message")
	l.Warn(ctx, "warn message")
	l.Error(ctx, "error message")
	l.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"info message", "warn message", "error message", "formatted message: test 123"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRequestIDIsLogged(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", "text")

	ctx := WithRequestID(context.Background(), "req-42")
	l.Info(ctx, "processing")

	if !strings.Contains(buf.String(), "req-42") {
		t.Errorf("request id not in output: %s", buf.String())
	}
	if got := RequestID(ctx); got != "req-42" {
		t.Errorf("RequestID() = %q, want %q", got, "req-42")
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q, want empty", got)
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    log.Level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", log.DebugLevel, true},
		{"info logs at debug level", "debug", log.InfoLevel, true},
		{"debug doesn't log at info level", "info", log.DebugLevel, false},
		{"info logs at info level", "info", log.InfoLevel, true},
		{"error always logs", "debug", log.ErrorLevel, true},
		{"invalid level defaults to info", "verbose", log.DebugLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.configLevel).(*implLogger)
			result := l.shouldLog(tt.logLevel)
			if result != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", result, tt.shouldLog)
			}
		})
	}
}
