package reconcile

import (
	"sort"
)

// Reconcile compares previous and current, both keyed by record key, and
// returns one result per key of their union, ordered by key.
func Reconcile[P, C any](kind string, previous map[string]P, current map[string]C, adapter Adapter[P, C]) *Report {
	union := buildUnion(previous, current)

	keys := make([]string, 0, len(union))
	for key := range union {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	report := &Report{Kind: kind, Results: make([]Result, 0, len(keys))}
	for _, key := range keys {
		result := buildResult(key, previous, current, adapter)
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status())
	}
	return report
}

// buildUnion creates the union of keys from both views.
func buildUnion[P, C any](previous map[string]P, current map[string]C) map[string]struct{} {
	union := make(map[string]struct{}, len(current))
	for key := range previous {
		union[key] = struct{}{}
	}
	for key := range current {
		union[key] = struct{}{}
	}
	return union
}

// buildResult creates the Result for a single key.
func buildResult[P, C any](key string, previous map[string]P, current map[string]C, adapter Adapter[P, C]) Result {
	prev, prevPresent := previous[key]
	cur, curPresent := current[key]

	result := Result{
		ID:              key,
		PreviousPresent: prevPresent,
		CurrentPresent:  curPresent,
	}

	var prevPtr *P
	var curPtr *C
	if prevPresent {
		prevPtr = &prev
	}
	if curPresent {
		curPtr = &cur
	}
	result.Name = adapter.ResolveName(prevPtr, curPtr)

	// Compare fields if both present
	if prevPresent && curPresent {
		result.Mismatch = adapter.CompareFields(prev, cur)
	}

	return result
}

func (s *Summary) add(status Status) {
	s.Total++
	switch status {
	case StatusAdded:
		s.Added++
	case StatusRemoved:
		s.Removed++
	case StatusChanged:
		s.Changed++
	default:
		s.Unchanged++
	}
}
