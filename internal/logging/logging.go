// Package logging sets up the per-run log destination: a timestamped
// file under the configured directory, echoed to stdout, with a run id
// stamped on every record.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Options configure Init.
type Options struct {
	Dir    string // directory for the run's log file, created if missing
	Format string // "text" or "json" (default "text")
	Level  string // "debug", "info", "warn", "error" (default "info")
	RunID  string // correlation id attached to every record
}

// Run is the logging destination for one invocation.
type Run struct {
	Logger *slog.Logger
	Path   string // the run's log file

	file *os.File
}

// Close closes the run's log file. Records logged afterwards still
// reach stdout through the default logger's handler but are dropped
// from the file.
func (r *Run) Close() error {
	return r.file.Close()
}

// Init opens a timestamped log file under opts.Dir and installs a
// handler writing every record to both the file and stdout. The
// returned logger is also set as the slog default so stray package
// logging lands in the same place.
func Init(opts Options) (*Run, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	name := fmt.Sprintf("qagent-dedup_%s.log", time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(opts.Dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	out := io.MultiWriter(os.Stdout, f)
	hopts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "json") {
		handler = slog.NewJSONHandler(out, hopts)
	} else {
		handler = slog.NewTextHandler(out, hopts)
	}

	logger := slog.New(handler)
	if opts.RunID != "" {
		logger = logger.With("run_id", opts.RunID)
	}
	slog.SetDefault(logger)

	return &Run{Logger: logger, Path: path, file: f}, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
