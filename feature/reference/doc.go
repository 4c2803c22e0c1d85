// Package reference builds the manufacturer and ammunition indices.
//
// Both are flat lookup tables keyed by a short code (e.g. "AEGS"). They are
// built once, before any entity is parsed, and are only read afterwards.
// Resolve returns the same *Record for every caller so identity can be
// compared across items and ships.
package reference
