package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alnah/go-mdquiz/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		format    string
		wantDebug bool
		wantWarn  bool
	}{
		{name: "defaults drop debug", wantWarn: true},
		{name: "debug console", level: "debug", format: "console", wantDebug: true, wantWarn: true},
		{name: "error hides warn", level: "error", format: "json"},
		{name: "level is case-insensitive", level: "DEBUG", format: "JSON", wantDebug: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := logging.New(tt.level, tt.format, &buf)
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}

			logger.Debug("debug entry")
			logger.Warn("warn entry")

			out := buf.String()
			if got := strings.Contains(out, "debug entry"); got != tt.wantDebug {
				t.Errorf("debug entry written = %v, want %v\n%s", got, tt.wantDebug, out)
			}
			if got := strings.Contains(out, "warn entry"); got != tt.wantWarn {
				t.Errorf("warn entry written = %v, want %v\n%s", got, tt.wantWarn, out)
			}
		})
	}
}

func TestNew_JSONEntry(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := logging.New("info", logging.FormatJSON, &buf)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	logger.Warn("skipping malformed quiz block", zap.Int("offset", 42))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["level"] != "warn" || entry["msg"] != "skipping malformed quiz block" {
		t.Errorf("entry = %v", entry)
	}
	if entry["offset"] != float64(42) {
		t.Errorf("offset = %v, want 42", entry["offset"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("JSON entries should carry a timestamp")
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		format  string
		wantErr error
	}{
		{name: "unknown level", level: "loud", wantErr: logging.ErrInvalidLevel},
		{name: "unknown format", level: "info", format: "xml", wantErr: logging.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := logging.New(tt.level, tt.format, &bytes.Buffer{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "", want: zapcore.WarnLevel},
		{level: "debug", want: zapcore.DebugLevel},
		{level: "info", want: zapcore.InfoLevel},
		{level: "warn", want: zapcore.WarnLevel},
		{level: "error", want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()

			got, err := logging.ParseLevel(tt.level)
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.level, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
