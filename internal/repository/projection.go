package repository

import (
	"clinic-management/internal/domain/entity"

	"gorm.io/gorm"
)

// applyProjection restricts db to the projection's columns and preloads
// each nested relation with its own column list.
func applyProjection(db *gorm.DB, projection entity.Projection) *gorm.DB {
	if len(projection.Columns) > 0 {
		db = db.Select(projection.Columns)
	}
	return preload(db, "", projection.Preloads)
}

func preload(db *gorm.DB, prefix string, preloads map[string]entity.Projection) *gorm.DB {
	for name, nested := range preloads {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		columns := nested.Columns
		db = db.Preload(path, func(tx *gorm.DB) *gorm.DB {
			if len(columns) > 0 {
				tx = tx.Select(columns)
			}
			return tx.Order("id")
		})
		db = preload(db, path, nested.Preloads)
	}
	return db
}
