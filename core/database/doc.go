// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The catalog snapshot store
// (feature/catalog) is the only consumer.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The snapshot
// store uses it to verify its table after migration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_records")
package database
