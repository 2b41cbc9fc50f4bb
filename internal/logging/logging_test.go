package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := New(DefaultOptions())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()

	logger.Info("nothing to see")
}

func TestNewWritesFile(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "logs", "bigbrick.log")
	opts.Level = "debug"

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug("spawned", "player", "alice")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(opts.File)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "spawned") || !strings.Contains(got, "player=alice") {
		t.Errorf("log file = %q, want message with player=alice", got)
	}
}

func TestNewLevelFilters(t *testing.T) {
	opts := DefaultOptions()
	opts.File = filepath.Join(t.TempDir(), "bigbrick.log")
	opts.Level = "warn"

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	closer.Close()

	data, err := os.ReadFile(opts.File)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if strings.Contains(got, "hidden") {
		t.Errorf("info line written at warn level: %q", got)
	}
	if !strings.Contains(got, "shown") {
		t.Errorf("warn line missing: %q", got)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "chatty"
	if _, _, err := New(opts); err == nil {
		t.Error("New() with invalid level should fail")
	}
}
