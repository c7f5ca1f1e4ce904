// Package inventory accumulates the full agent inventory from the
// paginated host asset search.
package inventory

import (
	"context"
	"log/slog"

	"github.com/secnix/qagent-dedup/internal/model"
	"github.com/secnix/qagent-dedup/internal/qps"
)

// Fetcher pages through the host asset search endpoint for one
// tracking method and returns the collected records as a snapshot.
type Fetcher struct {
	client         *qps.Client
	trackingMethod string
	pageSize       int
	logger         *slog.Logger
}

// NewFetcher creates a Fetcher. pageSize is the search page size; the
// offset starts at 1 and advances by pageSize per request.
func NewFetcher(client *qps.Client, trackingMethod string, pageSize int, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:         client,
		trackingMethod: trackingMethod,
		pageSize:       pageSize,
		logger:         logger,
	}
}

// FetchAll collects every page of the inventory. The fetch is
// fail-soft: on any transport, status or decode error it logs the
// failure and returns what was accumulated so far, so the result may be
// incomplete without carrying a marker. Context cancellation ends the
// loop the same way.
func (f *Fetcher) FetchAll(ctx context.Context) model.Inventory {
	var inv model.Inventory

	offset := 1
	for page := 1; ; page++ {
		resp, err := f.client.SearchHostAssets(ctx, qps.SearchOptions{
			TrackingMethod: f.trackingMethod,
			Limit:          f.pageSize,
			Offset:         offset,
		})
		if err != nil {
			f.logger.Error("host asset search failed, inventory may be incomplete",
				"page", page,
				"offset", offset,
				"collected", len(inv),
				"error", err,
			)
			return inv
		}

		for i := range resp.Assets {
			inv = append(inv, resp.Assets[i].ToModel())
		}

		f.logger.Debug("host asset page fetched",
			"page", page,
			"offset", offset,
			"entries", len(resp.Assets),
			"has_more", resp.HasMoreRecords,
		)

		if !resp.HasMoreRecords {
			break
		}
		offset += f.pageSize
	}

	return inv
}
