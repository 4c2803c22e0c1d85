package reconcile

// Status classifies one reconciled key.
type Status string

const (
	// StatusAdded marks a key only present in the current view.
	StatusAdded Status = "added"
	// StatusRemoved marks a key only present in the previous view.
	StatusRemoved Status = "removed"
	// StatusChanged marks a key present in both views with mismatching fields.
	StatusChanged Status = "changed"
	// StatusUnchanged marks a key present in both views with equal fields.
	StatusUnchanged Status = "unchanged"
)

// Result represents the reconciliation output for a single key.
type Result struct {
	// ID is the record key.
	ID string `json:"id"`

	// Name is the display name of the record.
	Name string `json:"name,omitempty"`

	// PreviousPresent indicates whether the key exists in the previous view.
	PreviousPresent bool `json:"previous_present"`

	// CurrentPresent indicates whether the key exists in the current view.
	CurrentPresent bool `json:"current_present"`

	// Mismatch describes each differing field, e.g. "name: prev=A cur=B".
	Mismatch []string `json:"mismatch,omitempty"`
}

// Status derives the classification of r.
func (r Result) Status() Status {
	switch {
	case r.CurrentPresent && !r.PreviousPresent:
		return StatusAdded
	case r.PreviousPresent && !r.CurrentPresent:
		return StatusRemoved
	case len(r.Mismatch) > 0:
		return StatusChanged
	default:
		return StatusUnchanged
	}
}

// Summary provides aggregate counts for a report.
type Summary struct {
	Total     int `json:"total"`
	Added     int `json:"added"`
	Removed   int `json:"removed"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
}

// Report contains the reconciliation of one kind of record.
type Report struct {
	Kind    string   `json:"kind"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Changes returns the results that are not unchanged, in key order.
func (r *Report) Changes() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status() != StatusUnchanged {
			out = append(out, res)
		}
	}
	return out
}
