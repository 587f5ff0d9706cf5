package logging

import (
	"log"
	"os"
	"path/filepath"
	"testing"
)

// TestSetupDisabledByDefault returns a no-op logger and creates nothing
func TestSetupDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := Setup(false, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closeFn()

	logger.Info("discarded")

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

// TestSetupEnabledWithDebug writes to the log file
func TestSetupEnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Info("test log message")
	log.Println("standard logger message")
	closeFn()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected log file to contain content")
	}
}

// TestSetupRotation moves an oversized log aside
func TestSetupRotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, FileName)

	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, closeFn, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closeFn()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != FileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxSize {
		t.Errorf("Expected new log file smaller than %d bytes, got %d", MaxSize, info.Size())
	}
}
