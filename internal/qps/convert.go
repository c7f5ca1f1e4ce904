package qps

import (
	"strings"
	"time"

	"github.com/secnix/qagent-dedup/internal/model"
)

// ParseTimestamp parses a wire timestamp and normalizes it to UTC.
// Returns the zero time for empty or invalid input, which orders before
// any real instant.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return time.Time{}
		}
	}

	return t.UTC()
}

// ToModel converts a HostAsset to a model.Agent. Hostnames are
// lowercased and timestamps normalized here, once, so downstream stages
// compare like with like.
func (h *HostAsset) ToModel() model.Agent {
	return model.Agent{
		ID:       h.ID,
		Hostname: strings.ToLower(h.Name),
		Address:  h.Address,
		Created:  ParseTimestamp(h.Created),
		Modified: ParseTimestamp(h.Modified),
	}
}
