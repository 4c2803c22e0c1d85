package index

import (
	"sort"

	"github.com/goccy/go-json"
)

// Entry is one record in an index together with its provenance.
type Entry[T any] struct {
	Key    string
	Source string
	Value  T
}

// Reader is the read-only view of an Index handed to downstream loaders.
type Reader[T any] interface {
	// Get returns the record stored under key.
	Get(key string) (T, bool)
	// Len returns the number of records.
	Len() int
	// Keys returns all keys in ascending order.
	Keys() []string
	// Values returns all records ordered by key.
	Values() []T
}

// Index is a keyed collection with last-write-wins semantics.
type Index[T any] struct {
	entries map[string]Entry[T]
}

// New creates an empty index.
func New[T any]() *Index[T] {
	return &Index[T]{entries: make(map[string]Entry[T])}
}

// Insert stores v under key. When the key was already present the previous
// entry is returned with replaced set to true.
func (ix *Index[T]) Insert(key, source string, v T) (prev Entry[T], replaced bool) {
	prev, replaced = ix.entries[key]
	ix.entries[key] = Entry[T]{Key: key, Source: source, Value: v}
	return prev, replaced
}

// Get returns the record stored under key.
func (ix *Index[T]) Get(key string) (T, bool) {
	e, ok := ix.entries[key]
	return e.Value, ok
}

// Lookup returns the full entry stored under key.
func (ix *Index[T]) Lookup(key string) (Entry[T], bool) {
	e, ok := ix.entries[key]
	return e, ok
}

// Len returns the number of records.
func (ix *Index[T]) Len() int {
	return len(ix.entries)
}

// Keys returns all keys in ascending order.
func (ix *Index[T]) Keys() []string {
	keys := make([]string, 0, len(ix.entries))
	for k := range ix.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns all entries ordered by key.
func (ix *Index[T]) Entries() []Entry[T] {
	keys := ix.Keys()
	out := make([]Entry[T], 0, len(keys))
	for _, k := range keys {
		out = append(out, ix.entries[k])
	}
	return out
}

// Values returns all records ordered by key.
func (ix *Index[T]) Values() []T {
	keys := ix.Keys()
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, ix.entries[k].Value)
	}
	return out
}

// MarshalJSON serializes the ordered view as a JSON array.
func (ix *Index[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(ix.Values())
}
