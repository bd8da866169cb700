package models

import (
	"time"

	"gorm.io/gorm"
)

type Tool struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	User        User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Title       string         `json:"title" gorm:"size:255;not null;check:title <> ''"`
	Description string         `json:"description" gorm:"type:text;not null"`
	Link        string         `json:"link" gorm:"not null"`
	Tags        []Tag          `json:"tags" gorm:"many2many:tool_tags;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
