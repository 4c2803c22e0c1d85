// Package loadout expands default loadouts into slot trees.
//
// A loadout is either a separate file (<Loadout><Items><Item .../>) or a list
// of manual entries embedded in an entity definition. Either form may point
// at further loadout files, so expansion is recursive.
//
// Expansion always terminates: a file that is already on the current
// expansion path is not opened again and its slot is marked Truncated. A
// nested file that is absent or malformed marks its slot Missing; only the
// root file of Expand reports an error.
package loadout
