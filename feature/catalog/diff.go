package catalog

import (
	"context"
	"fmt"

	"scdb-loader/core/reconcile"

	"go.uber.org/zap"
)

// rowAdapter reconciles stored snapshot rows against freshly built ones.
type rowAdapter struct{}

func (rowAdapter) Name() string { return "catalog" }

func (rowAdapter) ResolveName(prev *Row, cur *Row) string {
	if cur != nil && cur.Name != "" {
		return cur.Name
	}
	if prev != nil {
		return prev.Name
	}
	return ""
}

func (rowAdapter) CompareFields(prev Row, cur Row) []string {
	var mismatch []string
	if prev.Name != cur.Name {
		mismatch = append(mismatch, fmt.Sprintf("name: prev=%s cur=%s", prev.Name, cur.Name))
	}
	if prev.Source != cur.Source {
		mismatch = append(mismatch, fmt.Sprintf("source: prev=%s cur=%s", prev.Source, cur.Source))
	}
	if prev.Payload != cur.Payload {
		mismatch = append(mismatch, "payload")
	}
	return mismatch
}

// Diff compares the stored rows of kind with rows without writing anything.
func (s *Store) Diff(ctx context.Context, kind string, rows []Row) (*reconcile.Report, error) {
	var stored []Row
	if err := s.db.WithContext(ctx).Where("kind = ?", kind).Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s snapshot: %w", kind, err)
	}

	report := reconcile.Reconcile(kind, byKey(stored), byKey(rows), rowAdapter{})
	s.logger.Info("Snapshot changes",
		zap.String("kind", kind),
		zap.Int("added", report.Summary.Added),
		zap.Int("removed", report.Summary.Removed),
		zap.Int("changed", report.Summary.Changed),
		zap.Int("unchanged", report.Summary.Unchanged))
	return report, nil
}

func byKey(rows []Row) map[string]Row {
	m := make(map[string]Row, len(rows))
	for _, r := range rows {
		m[r.Key] = r
	}
	return m
}
