package logging

import (
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	run, err := Init(Options{Dir: dir, Level: "debug", RunID: "run-123"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	run.Logger.Info("starting removal", "candidates", 3)
	run.Logger.Debug("page fetched", "page", 1)

	if err := run.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(run.Path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "starting removal") {
		t.Errorf("log file missing info record:\n%s", content)
	}
	if !strings.Contains(content, "page fetched") {
		t.Errorf("log file missing debug record (level=debug):\n%s", content)
	}
	if !strings.Contains(content, "run_id=run-123") {
		t.Errorf("log file missing run_id attribute:\n%s", content)
	}
	if !strings.Contains(run.Path, "qagent-dedup_") || !strings.HasSuffix(run.Path, ".log") {
		t.Errorf("Path = %q, want timestamped qagent-dedup_*.log name", run.Path)
	}
}

func TestInitLevelFiltering(t *testing.T) {
	dir := t.TempDir()

	run, err := Init(Options{Dir: dir, Level: "warn"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	run.Logger.Info("should be filtered")
	run.Logger.Warn("should appear")
	run.Close()

	data, _ := os.ReadFile(run.Path)
	content := string(data)

	if strings.Contains(content, "should be filtered") {
		t.Errorf("info record should be filtered at warn level:\n%s", content)
	}
	if !strings.Contains(content, "should appear") {
		t.Errorf("warn record missing:\n%s", content)
	}
}

func TestInitJSONFormat(t *testing.T) {
	dir := t.TempDir()

	run, err := Init(Options{Dir: dir, Format: "json", RunID: "run-9"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	run.Logger.Info("hello")
	run.Close()

	data, _ := os.ReadFile(run.Path)
	content := string(data)

	if !strings.Contains(content, `"msg":"hello"`) {
		t.Errorf("expected JSON records, got:\n%s", content)
	}
	if !strings.Contains(content, `"run_id":"run-9"`) {
		t.Errorf("expected run_id in JSON records, got:\n%s", content)
	}
}

func TestInitSetsDefaultLogger(t *testing.T) {
	dir := t.TempDir()

	prev := slog.Default()
	defer slog.SetDefault(prev)

	run, err := Init(Options{Dir: dir})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer run.Close()

	if slog.Default() != run.Logger {
		t.Error("Init should install the run logger as the slog default")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"  info  ", slog.LevelInfo},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
