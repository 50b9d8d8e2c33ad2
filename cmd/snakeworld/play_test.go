package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/snakeworld/internal/config"
)

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(42); got != 42 {
		t.Errorf("resolveSeed(42) = %d, want 42", got)
	}
	if got := resolveSeed(0); got == 0 {
		t.Error("resolveSeed(0) should pick a clock seed")
	}
}

func TestPlayLoggerLeavesStderrAlone(t *testing.T) {
	capture, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	if err != nil {
		t.Fatal(err)
	}
	defer capture.Close()

	stderr := os.Stderr
	os.Stderr = capture
	defer func() { os.Stderr = stderr }()

	logger, closer, err := newPlayLogger(config.LogConfig{Level: "debug"})
	if err != nil {
		t.Fatalf("newPlayLogger() failed: %v", err)
	}
	logger.Info("session started", "seed", 7)
	logger.Error("game stopped")
	closer.Close()

	data, err := os.ReadFile(capture.Name())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 {
		t.Errorf("stderr got %q, want nothing", data)
	}
}

func TestPlayGameLogsStartupFault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snakeworld.log")

	cfg := config.DefaultConfig()
	cfg.Storage.Enabled = false
	cfg.Audio.Enabled = false
	cfg.Log = config.LogConfig{Level: "info", File: path}
	cfg.Display.Border = "ultraviolet"

	if err := playGame(cfg, 1); err == nil {
		t.Fatal("expected error for an unknown border color")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), "invalid display settings") {
		t.Errorf("log file = %q, want the startup fault", data)
	}
}
