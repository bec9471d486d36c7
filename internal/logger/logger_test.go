package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_EmptyPathIsNoop(t *testing.T) {
	if err := Init(""); err != nil {
		t.Errorf("Init(\"\") = %v, want nil", err)
	}
	// Logging without a sink must not panic.
	Info("noop message")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotscope.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Info("dataset loaded", "rows", 42)
	Error("load failed", "path", "/tmp/x.csv")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "dataset loaded") {
		t.Error("log file missing info entry")
	}
	if !strings.Contains(content, "load failed") {
		t.Error("log file missing error entry")
	}
}
