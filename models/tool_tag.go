package models

// ToolTag is the join row between a tool and a tag. Composite primary key,
// no surrogate id: one row per (tool, tag) pair.
type ToolTag struct {
	ToolID uint `json:"tool_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}
