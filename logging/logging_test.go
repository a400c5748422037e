package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/folio-arcade/config"
)

// TestNewDisabledWithoutFile verifies an empty path yields a no-op logger and no file
func TestNewDisabledWithoutFile(t *testing.T) {
	log, cleanup, err := New(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer cleanup()

	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected a disabled logger")
	}
}

// TestNewWritesConsoleFormat verifies the log directory is created and entries reach the file
func TestNewWritesConsoleFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")
	log, cleanup, err := New(config.LogConfig{File: path, Level: "info", Format: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Debug("hidden")
	log.Info("game opened")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "game opened") {
		t.Errorf("log missing info entry: %q", text)
	}
	if strings.Contains(text, "hidden") {
		t.Errorf("debug entry written at info level: %q", text)
	}
	if !strings.Contains(text, " | INFO | ") {
		t.Errorf("unexpected console layout: %q", text)
	}
}

// TestNewWritesJSON verifies the json format emits one object per line
func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.log")
	log, cleanup, err := New(config.LogConfig{File: path, Level: "debug", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Named("host").Debug("game closed")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	if entry["msg"] != "game closed" || entry["level"] != "debug" || entry["logger"] != "host" {
		t.Errorf("entry = %v", entry)
	}
}

// TestParseLevel verifies level names and the info fallback
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{" warn ", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
