package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitCreatesLogDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := Init(Config{LogDir: dir}); err != nil {
		t.Fatal(err)
	}
	if Logger == nil {
		t.Fatal("expected a logger")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("log dir missing: %v", err)
	}
}

func TestLoggingBeforeInitIsSafe(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("no-op")
	Info("no-op")
	Warn("no-op")
	Error("no-op")
}
