// Package entity loads item and vehicle definitions into catalog records.
//
// Both loaders read EntityClassDefinition files, resolve the manufacturer
// (and, for items, the ammunition) against the reference indices, expand
// the default loadout and resolve display text. Records are keyed by class
// name; a class defined twice keeps the later file and logs both paths.
//
// Nothing in this package fails a run because of bad content. Unreadable
// files are skipped, unresolved references become nil, and broken loadout
// branches are marked on their slot. Every such event produces exactly one
// warning on the run logger.
package entity
