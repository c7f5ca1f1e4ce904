// Package remover uninstalls duplicate agents through the QPS API.
//
// Candidates are processed strictly in order, one at a time. A failure
// on one agent is logged and counted but never stops the run; the only
// error Remove returns is context cancellation. In dry-run mode the
// remover logs what it would do and performs no network calls.
package remover

import (
	"context"
	"log/slog"
	"time"

	"github.com/secnix/qagent-dedup/internal/model"
	"github.com/secnix/qagent-dedup/internal/qps"
)

// Stats summarizes a removal pass.
type Stats struct {
	// Processed is the number of candidates handled, in either mode.
	Processed int

	// Uninstalled is the number of agents the API confirmed removed.
	Uninstalled int

	// Failed is the number of candidates whose uninstall errored or
	// was rejected by the API.
	Failed int
}

// Remover drives uninstall requests for duplicate agents.
type Remover struct {
	client *qps.Client
	delay  time.Duration
	logger *slog.Logger
}

// New returns a Remover that pauses delay before each uninstall request.
// A nil logger falls back to slog.Default.
func New(client *qps.Client, delay time.Duration, logger *slog.Logger) *Remover {
	if logger == nil {
		logger = slog.Default()
	}
	return &Remover{
		client: client,
		delay:  delay,
		logger: logger,
	}
}

// Remove processes the candidates in order. In dry-run mode each agent
// is logged and counted without touching the network. In live mode the
// remover waits the configured delay, posts the uninstall, and treats
// anything but an explicit API confirmation as a per-agent failure.
//
// The returned Stats cover the work done so far even when Remove stops
// early; the only returned error is the context's.
func (r *Remover) Remove(ctx context.Context, candidates model.Inventory, dryRun bool) (Stats, error) {
	var stats Stats
	for _, agent := range candidates {
		if dryRun {
			r.logger.Info("would uninstall agent",
				"agent_id", agent.ID,
				"hostname", agent.Hostname,
				"address", agent.Address,
				"created", agent.Created,
				"modified", agent.Modified,
			)
			stats.Processed++
			continue
		}

		if err := r.wait(ctx); err != nil {
			return stats, err
		}

		r.logger.Info("uninstalling agent",
			"agent_id", agent.ID,
			"hostname", agent.Hostname,
			"address", agent.Address,
		)
		stats.Processed++

		resp, err := r.client.UninstallAgent(ctx, agent.ID)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			r.logger.Error("uninstall request failed",
				"agent_id", agent.ID,
				"error", err,
			)
			stats.Failed++
			continue
		}
		if !resp.Succeeded() {
			r.logger.Error("uninstall rejected",
				"agent_id", agent.ID,
				"response_code", resp.ResponseCode,
				"count", resp.Count,
			)
			stats.Failed++
			continue
		}

		r.logger.Info("uninstalled agent", "agent_id", agent.ID)
		stats.Uninstalled++
	}
	return stats, nil
}

// wait blocks for the configured delay or until the context is done.
func (r *Remover) wait(ctx context.Context) error {
	if r.delay <= 0 {
		return nil
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
