package reconcile

// Adapter defines the model-specific part of a reconciliation between a
// previous view of type P and a current view of type C.
type Adapter[P, C any] interface {
	// Name returns the name of this adapter (e.g., "catalog").
	Name() string

	// ResolveName returns the display name of a record. Either side may be
	// nil when the key is absent from that view.
	ResolveName(prev *P, cur *C) string

	// CompareFields returns one description per differing field. Both
	// records are present when this is called.
	CompareFields(prev P, cur C) []string
}
