package model

import "time"

// Agent represents one cloud agent's asset record as reported by the
// inventory platform.
type Agent struct {
	ID       string    // Asset id assigned by the platform (identity)
	Hostname string    // Host name, lowercased
	Address  string    // Network address as reported, no canonicalization
	Created  time.Time // Record creation time (UTC)
	Modified time.Time // Last modification time (UTC)
}

// GroupKey identifies a duplicate group. Multiple asset records may
// legitimately share a key; that is the condition treated as "duplicate".
type GroupKey struct {
	Hostname string
	Address  string
}

// Key returns the grouping key for duplicate detection. The record's
// identity stays ID; the key only says which host the record claims.
func (a Agent) Key() GroupKey {
	return GroupKey{Hostname: a.Hostname, Address: a.Address}
}

// Inventory is an ordered snapshot of agent records accumulated across
// paginated search calls. Downstream stages treat it as read-only.
type Inventory []Agent
