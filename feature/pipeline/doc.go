// Package pipeline wires the loaders together in dependency order.
//
//	Localisation -> (Manufacturers | Ammo) -> Items -> Ships -> Shops -> Starmap
//
// Each stage builds one index and emits it before the next stage starts.
// Completed indices are passed to later stages as read-only values. Only a
// fatal configuration problem (missing content root or label file) stops a
// run; everything else is logged and the run emits what it could build.
package pipeline
