// Package index provides the keyed collection every loader builds.
//
// An Index maps a stable key (className, manufacturer code, shop id) to one
// record together with the source file it came from. It is exposed both as a
// map for lookups and as a key-sorted slice for serialization; both views read
// the same storage so they cannot drift.
//
// # Duplicate keys
//
// Insert applies last-write-wins and returns the entry it replaced, so the
// caller can log both source paths. The index itself never logs.
//
// # Ownership
//
// The loader that builds an index owns it. Downstream loaders receive the
// read-only Reader view.
package index
