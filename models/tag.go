package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag names are stored lower-cased; the unique index is what makes
// concurrent get-or-create safe.
type Tag struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TagWithToolCount is the projection for the tag listing, joining in how
// many tools currently carry each tag.
type TagWithToolCount struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ToolCount int    `json:"tool_count"`
}
