// Package dedup implements the duplicate selection rule.
//
// Records are grouped by (hostname, address). Within a group the record
// with the latest modified time is retained, ties broken by earliest
// created time; every other member becomes a removal candidate. A group
// of size 1 is never a duplicate.
//
// Selection is pure: it never mutates its input and never performs I/O,
// so running it twice on the same snapshot yields the same candidates.
package dedup
