package models

import "gorm.io/gorm"

// AllModels returns every model for migration, in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Tool{},
		&Tag{},
		&ToolTag{},
	}
}

// AutoMigrate creates the schema. The tool_tags join table is registered
// explicitly so it keeps its composite primary key instead of getting a
// generated surrogate one.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Tool{}, "Tags", &ToolTag{}); err != nil {
		return err
	}
	return db.AutoMigrate(AllModels()...)
}
