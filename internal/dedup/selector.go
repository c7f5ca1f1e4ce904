package dedup

import (
	"slices"
	"strings"

	"github.com/secnix/qagent-dedup/internal/model"
)

// FindDuplicates returns the removal candidates in inv: for every group
// of records sharing (hostname, address), all but the retained one. The
// retained record is the latest-modified member, ties broken by
// earliest created; a missing timestamp orders earliest. Candidates are
// emitted group by group in (hostname, address) order so logs are
// deterministic across runs.
func FindDuplicates(inv model.Inventory) model.Inventory {
	groups := make(map[model.GroupKey]model.Inventory)
	for _, a := range inv {
		k := a.Key()
		groups[k] = append(groups[k], a)
	}

	keys := make([]model.GroupKey, 0, len(groups))
	for k, g := range groups {
		if len(g) > 1 {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b model.GroupKey) int {
		if c := strings.Compare(a.Hostname, b.Hostname); c != 0 {
			return c
		}
		return strings.Compare(a.Address, b.Address)
	})

	var candidates model.Inventory
	for _, k := range keys {
		group := groups[k]
		slices.SortStableFunc(group, func(a, b model.Agent) int {
			if c := b.Modified.Compare(a.Modified); c != 0 {
				return c
			}
			return a.Created.Compare(b.Created)
		})
		candidates = append(candidates, group[1:]...)
	}

	return candidates
}
