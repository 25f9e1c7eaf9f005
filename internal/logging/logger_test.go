package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WithOutput(&buf))

	log.Info("analysis complete", "coefficients", 101, "points", 250, "err", errors.New("none"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "analysis complete" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["coefficients"] != float64(101) {
		t.Errorf("coefficients = %v", entry["coefficients"])
	}
	if entry["err"] != "none" {
		t.Errorf("err = %v", entry["err"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WithOutput(&buf), WithLevel("warn"))

	log.Debug("hidden")
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn entry missing: %q", buf.String())
	}

	buf.Reset()
	log.SetLevel("debug")
	log.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("debug entry missing after SetLevel: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(WithOutput(&buf), WithConsole()).With("phase", "drawing")
	log.Info("sample added")
	if !strings.Contains(buf.String(), "drawing") {
		t.Errorf("child logger lost fields: %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("dropped")
	if err := log.Sync(); err != nil {
		t.Errorf("nop sync: %v", err)
	}
}
