package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_records (id INTEGER PRIMARY KEY, name TEXT, payload TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_records")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])

	t.Run("Missing table", func(t *testing.T) {
		_, err := GetTableColumns(db, "non_existent")
		assert.Error(t, err)
	})

	t.Run("MissingColumns", func(t *testing.T) {
		missing, err := MissingColumns(db, "test_records", "id", "NAME", "source")
		require.NoError(t, err)
		assert.Equal(t, []string{"source"}, missing)
	})
}
