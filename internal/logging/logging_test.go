package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLevel(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"bogus", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tc.level, "test")

			logger.Debug("debug-line")
			logger.Info("info-line")

			out := buf.String()
			if got := strings.Contains(out, "debug-line"); got != tc.wantDebug {
				t.Errorf("debug logged = %v, expected %v", got, tc.wantDebug)
			}
			if got := strings.Contains(out, "info-line"); got != tc.wantInfo {
				t.Errorf("info logged = %v, expected %v", got, tc.wantInfo)
			}
		})
	}
}

func TestNewFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "arcade")
	logger.Warn("cannot write high score", "key", "snakeHighScore")

	out := buf.String()
	if !strings.Contains(out, "arcade") || !strings.Contains(out, "key=snakeHighScore") {
		t.Errorf("Unexpected log line: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	New(f, "info", "").Info("hello")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Log file should contain the message, got %q", data)
	}
}
