// Package reconcile compares two keyed views of the same records and reports
// which keys were added, removed or changed.
//
// The engine builds the union of keys from both sides, records presence per
// side and asks an Adapter to compare records present on both. It knows
// nothing about what a record is; adapters supply the display name and the
// field comparison.
//
// # Usage Example
//
//	report := reconcile.Reconcile("ships", previous, current, adapter)
//	for _, r := range report.Changes() {
//	    fmt.Println(r.ID, r.Status(), r.Mismatch)
//	}
package reconcile
