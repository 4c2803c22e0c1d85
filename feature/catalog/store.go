package catalog

import (
	"context"
	"fmt"

	"scdb-loader/core/database"
	"scdb-loader/core/index"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Row is one record of the relational snapshot.
type Row struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Kind    string `gorm:"column:kind;size:32;not null;uniqueIndex:idx_catalog_kind_key"`
	Key     string `gorm:"column:key;size:191;not null;uniqueIndex:idx_catalog_kind_key"`
	Name    string `gorm:"column:name;size:255"`
	Source  string `gorm:"column:source;size:512"`
	Payload string `gorm:"column:payload;type:longtext"` // record as JSON
}

// TableName pins the snapshot table name.
func (Row) TableName() string {
	return "catalog_records"
}

var snapshotColumns = []string{"kind", "key", "name", "source", "payload"}

// Rows flattens an index into snapshot rows. name extracts the display name
// of a record and may be nil.
func Rows[T any](kind string, ix *index.Index[T], name func(T) string) ([]Row, error) {
	entries := ix.Entries()
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		payload, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s: %w", kind, e.Key, err)
		}
		row := Row{Kind: kind, Key: e.Key, Source: e.Source, Payload: string(payload)}
		if name != nil {
			row.Name = name(e.Value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Store persists the relational snapshot.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a Store on db.
func NewStore(db *gorm.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

// Migrate creates or updates the snapshot table and verifies its columns.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Row{}); err != nil {
		return fmt.Errorf("failed to migrate catalog_records: %w", err)
	}

	missing, err := database.MissingColumns(s.db, Row{}.TableName(), snapshotColumns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("catalog_records is missing columns %v", missing)
	}
	return nil
}

// Replace swaps every row of kind for rows in one transaction.
func (s *Store) Replace(ctx context.Context, kind string, rows []Row) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("kind = ?", kind).Delete(&Row{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", kind, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to insert %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Snapshot replaced", zap.String("kind", kind), zap.Int("rows", len(rows)))
	return nil
}

// Count returns the number of rows stored for kind.
func (s *Store) Count(ctx context.Context, kind string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&Row{}).Where("kind = ?", kind).Count(&n).Error
	return n, err
}
