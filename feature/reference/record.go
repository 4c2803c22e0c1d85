package reference

import (
	"scdb-loader/core/index"
)

// Record is one manufacturer or ammunition definition.
type Record struct {
	Code        string         `json:"code"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Source      string         `json:"source"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// Localizer resolves "@key" display text.
type Localizer interface {
	Text(value string) string
}

// Index holds reference records keyed by code.
type Index struct {
	*index.Index[*Record]
}

// NewIndex creates an empty reference index.
func NewIndex() *Index {
	return &Index{Index: index.New[*Record]()}
}

// Resolve returns the record for code, or nil when code is empty or unknown.
// It never fails; callers log the miss.
func (ix *Index) Resolve(code string) *Record {
	if ix == nil || code == "" {
		return nil
	}
	rec, ok := ix.Get(code)
	if !ok {
		return nil
	}
	return rec
}
