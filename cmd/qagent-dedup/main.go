// Command qagent-dedup finds and removes duplicate cloud agent
// registrations on a Qualys platform.
//
// A run fetches the full agent inventory for the configured tracking
// method, groups agents that share a hostname and address, keeps the
// most recently modified agent in each group, and uninstalls the rest
// through the QPS API. With --dry-run the tool reports what it would
// remove without making any uninstall calls.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/secnix/qagent-dedup/internal/config"
	"github.com/secnix/qagent-dedup/internal/dedup"
	"github.com/secnix/qagent-dedup/internal/inventory"
	"github.com/secnix/qagent-dedup/internal/logging"
	"github.com/secnix/qagent-dedup/internal/qps"
	"github.com/secnix/qagent-dedup/internal/remover"
	"github.com/secnix/qagent-dedup/internal/version"
)

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "qagent-dedup",
		Short: "Remove duplicate cloud agent registrations",
		Long: `qagent-dedup deduplicates cloud agent registrations on a Qualys platform.

Agents are considered duplicates when they share a hostname and address.
The most recently modified agent in each group is kept; the others are
uninstalled through the QPS API. Credentials and platform settings come
from QAGENT_* environment variables or a config file.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfgFile, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report duplicates without uninstalling anything")
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to config file (default searches ./qagent-dedup.yaml)")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgFile string, dryRun bool) error {
	cfg, err := config.LoadAndValidate(cfgFile)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logRun, err := logging.Init(logging.Options{
		Dir:    cfg.LogDir,
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		RunID:  runID,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logRun.Close()
	logger := logRun.Logger

	logger.Info("starting agent deduplication",
		"version", version.Version,
		"commit", version.Commit,
		"platform_url", cfg.PlatformURL,
		"tracking_method", cfg.TrackingMethod,
		"dry_run", dryRun,
		"log_file", logRun.Path,
	)

	client := qps.NewClient(cfg.PlatformURL, cfg.Login, cfg.Password,
		qps.WithHeaders(cfg.ExtraHeaders),
		qps.WithLogger(logger),
	)

	inv := inventory.NewFetcher(client, cfg.TrackingMethod, cfg.PageSize, logger).FetchAll(ctx)
	if len(inv) == 0 {
		logger.Info("no agents found to process")
		return nil
	}
	logger.Info("inventory collected", "agents", len(inv))

	candidates := dedup.FindDuplicates(inv)
	if len(candidates) == 0 {
		logger.Info("no duplicates found to process")
		return nil
	}
	logger.Info("duplicate agents marked for removal",
		"candidates", len(candidates),
		"retained", len(inv)-len(candidates),
	)

	stats, err := remover.New(client, cfg.RequestDelay, logger).Remove(ctx, candidates, dryRun)
	if err != nil {
		return fmt.Errorf("removal interrupted: %w", err)
	}

	logger.Info("run complete",
		"processed", stats.Processed,
		"uninstalled", stats.Uninstalled,
		"failed", stats.Failed,
	)
	if dryRun {
		logger.Info("dry-run mode enabled, no agents were uninstalled")
	}
	return nil
}
