// Package content knows the layout of an extracted game data tree.
//
// It enumerates definition files of one kind in a stable order, resolves the
// data-relative references found inside files (such as loadout paths) and
// checks that the expected folders exist before any loader runs.
//
// # Enumeration order
//
// Files are returned in lexical order (filepath.WalkDir reads each directory
// sorted by name). Loaders apply last-write-wins on duplicate keys, so the
// order is part of the output contract and must not depend on the platform.
//
// # References
//
// Game files reference each other with paths relative to the Data folder,
// written with either slash style and in inconsistent case. Tree.Resolve
// tries the literal path first and falls back to a case-insensitive index of
// the data folder built on first use.
package content
