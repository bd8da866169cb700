package repositories

import (
	"toolbox-api/models"

	"gorm.io/gorm"
)

type ToolRepository interface {
	WithTx(tx *gorm.DB) ToolRepository
	Create(tool *models.Tool) error
	GetByID(id uint) (*models.Tool, error)
	GetList(params models.ToolListParams) ([]models.Tool, int64, error)
	Update(tool *models.Tool) error
	Delete(id uint) error
	GetTagIDs(toolID uint) ([]uint, error)
	AddTagAssociations(toolID uint, tagIDs []uint) error
	RemoveTagAssociations(toolID uint, tagIDs []uint) error
}

type toolRepository struct {
	db *gorm.DB
}

func NewToolRepository(db *gorm.DB) ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) WithTx(tx *gorm.DB) ToolRepository {
	return &toolRepository{db: tx}
}

func (r *toolRepository) Create(tool *models.Tool) error {
	// Tags are synchronized separately; creating through the association
	// here would bypass the diff-based sync.
	return r.db.Omit("Tags").Create(tool).Error
}

func (r *toolRepository) GetByID(id uint) (*models.Tool, error) {
	var tool models.Tool
	err := r.db.Preload("Tags").First(&tool, id).Error
	return &tool, err
}

// GetList applies the optional tag filter and owner scope, then pages the
// result. Ordering is newest-first with id as tie-breaker; pagination
// correctness depends on this being stable.
func (r *toolRepository) GetList(params models.ToolListParams) ([]models.Tool, int64, error) {
	var tools []models.Tool
	var total int64

	query := r.db.Model(&models.Tool{}).Preload("Tags")

	if params.UserID > 0 {
		query = query.Where("tools.user_id = ?", params.UserID)
	}

	if params.Tag != "" {
		// Tag names are unique, so a tool matches the join at most once
		// and no DISTINCT is needed.
		query = query.
			Joins("JOIN tool_tags ON tool_tags.tool_id = tools.id").
			Joins("JOIN tags ON tags.id = tool_tags.tag_id").
			Where("tags.name = ?", params.Tag)
	}

	// Count runs before the column selection is narrowed; gorm turns a
	// single custom select entry into the COUNT argument, and
	// COUNT(tools.*) is not valid SQL.
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Tag != "" {
		query = query.Select("tools.*")
	}

	offset := (params.Page - 1) * params.Limit
	err := query.
		Order("tools.created_at DESC, tools.id DESC").
		Offset(offset).
		Limit(params.Limit).
		Find(&tools).Error

	return tools, total, err
}

func (r *toolRepository) Update(tool *models.Tool) error {
	return r.db.Omit("Tags").Save(tool).Error
}

func (r *toolRepository) Delete(id uint) error {
	return r.db.Delete(&models.Tool{}, id).Error
}

func (r *toolRepository) GetTagIDs(toolID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.ToolTag{}).
		Where("tool_id = ?", toolID).
		Pluck("tag_id", &ids).Error
	return ids, err
}

func (r *toolRepository) AddTagAssociations(toolID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.ToolTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = models.ToolTag{ToolID: toolID, TagID: tagID}
	}
	return r.db.Create(&rows).Error
}

func (r *toolRepository) RemoveTagAssociations(toolID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}
	return r.db.
		Where("tool_id = ? AND tag_id IN ?", toolID, tagIDs).
		Delete(&models.ToolTag{}).Error
}
