package reconcile

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type price struct {
	Name  string
	Value int
}

// mockAdapter compares prices by value
type mockAdapter struct{}

func (mockAdapter) Name() string { return "mock" }

func (mockAdapter) ResolveName(prev *price, cur *price) string {
	if cur != nil {
		return cur.Name
	}
	if prev != nil {
		return prev.Name
	}
	return ""
}

func (mockAdapter) CompareFields(prev price, cur price) []string {
	if prev.Value != cur.Value {
		return []string{fmt.Sprintf("value: prev=%d cur=%d", prev.Value, cur.Value)}
	}
	return nil
}

func TestReconcile(t *testing.T) {
	previous := map[string]price{
		"gladius": {Name: "Gladius", Value: 90},
		"hornet":  {Name: "Hornet", Value: 110},
		"aurora":  {Name: "Aurora", Value: 20},
		"mustang": {Name: "Mustang", Value: 25},
	}
	current := map[string]price{
		"gladius": {Name: "Gladius", Value: 90},
		"hornet":  {Name: "Hornet F7C", Value: 125},
		"mustang": {Name: "Mustang", Value: 25},
		"arrow":   {Name: "Arrow", Value: 75},
	}

	report := Reconcile("ships", previous, current, mockAdapter{})

	assert.Equal(t, "ships", report.Kind)
	assert.Equal(t, Summary{Total: 5, Added: 1, Removed: 1, Changed: 1, Unchanged: 2}, report.Summary)

	ids := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"arrow", "aurora", "gladius", "hornet", "mustang"}, ids)

	changes := report.Changes()
	require.Len(t, changes, 3)

	assert.Equal(t, StatusAdded, changes[0].Status())
	assert.Equal(t, "Arrow", changes[0].Name)

	assert.Equal(t, StatusRemoved, changes[1].Status())
	assert.Equal(t, "Aurora", changes[1].Name)

	assert.Equal(t, StatusChanged, changes[2].Status())
	assert.Equal(t, "Hornet F7C", changes[2].Name)
	assert.Equal(t, []string{"value: prev=110 cur=125"}, changes[2].Mismatch)
}

func TestReconcile_Empty(t *testing.T) {
	report := Reconcile[price, price]("none", nil, nil, mockAdapter{})
	assert.Empty(t, report.Results)
	assert.Empty(t, report.Changes())
	assert.Equal(t, Summary{}, report.Summary)
}

func TestResult_Status(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   Status
	}{
		{"added", Result{CurrentPresent: true}, StatusAdded},
		{"removed", Result{PreviousPresent: true}, StatusRemoved},
		{"changed", Result{PreviousPresent: true, CurrentPresent: true, Mismatch: []string{"x"}}, StatusChanged},
		{"unchanged", Result{PreviousPresent: true, CurrentPresent: true}, StatusUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Status())
		})
	}
}
