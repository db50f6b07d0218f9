package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug("hidden")
	log.Info("shown")
	log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "INFO") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Error("New should reject an unknown level")
	}
}

func TestNew_LevelCaseInsensitive(t *testing.T) {
	if _, err := New(" WARN ", &bytes.Buffer{}); err != nil {
		t.Errorf("New failed: %v", err)
	}
}
