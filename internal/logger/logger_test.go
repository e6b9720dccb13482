package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ingles-autodidata/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	cfg := &config.Config{Env: "prod", Log: config.Log{Level: "info", File: path}}

	log, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	log.Debug("hidden")
	log.Info("session finished")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "session finished") || strings.Contains(string(data), "hidden") {
		t.Fatalf("unexpected log contents: %s", data)
	}
}

func TestNewWithoutFileIsNop(t *testing.T) {
	log, err := New(&config.Config{Log: config.Log{Level: "debug"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if log.Core().Enabled(0) {
		t.Fatalf("expected a no-op logger")
	}
}
