package entity

import (
	"scdb-loader/core/parser"
	"scdb-loader/feature/entity/models"
)

// ParseItemFile decodes a single entity definition without resolving any
// reference. It backs the item command.
func ParseItemFile(path string) (*models.Definition, error) {
	def, err := parser.Parse[models.Definition](path)
	if err != nil {
		return nil, err
	}
	def.ClassName = parser.RecordName(def.XMLName, path)
	return def, nil
}
