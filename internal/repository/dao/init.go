package dao

import "gorm.io/gorm"

// InitTables creates the schema on startup if it does not exist yet.
func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Recipe{},
	)
}
