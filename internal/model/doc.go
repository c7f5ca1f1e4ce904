// Package model defines shared data types used across a deduplication run.
//
// Conventions:
//   - Hostnames: lowercased at the API parse boundary
//   - Timestamps: time.Time normalized to UTC; the zero value marks an
//     absent or unparseable wire timestamp and orders before any real instant
//   - IDs: opaque strings assigned by the inventory platform
package model
