package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, out string)
	}{
		{"json", func(t *testing.T, out string) {
			var entry map[string]any
			if err := json.Unmarshal([]byte(out), &entry); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if entry["kind"] != "punop" {
				t.Errorf("kind = %v", entry["kind"])
			}
		}},
		{"text", func(t *testing.T, out string) {
			if !strings.Contains(out, "kind=punop") || !strings.Contains(out, "time=") {
				t.Errorf("unexpected text output %q", out)
			}
		}},
		{"console", func(t *testing.T, out string) {
			if !strings.Contains(out, "kind=punop") || strings.Contains(out, "time=") {
				t.Errorf("unexpected console output %q", out)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(Config{Level: "info", Format: tt.format, Writer: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			logger.Info("constructed", "kind", "punop")
			tt.check(t, buf.String())
		})
	}
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: "text", Writer: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn message not logged")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("invalid level accepted")
	}
	if _, err := New(Config{Format: "xml"}); err == nil {
		t.Error("invalid format accepted")
	}
}

func TestParseLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "", "warning", "ERROR"} {
		if _, err := parseLevel(level); err != nil {
			t.Errorf("parseLevel(%q) error = %v", level, err)
		}
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.Handler().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard() logger enabled for error level")
	}
}
