package repositories

import (
	"errors"
	"strings"

	"toolbox-api/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	WithTx(tx *gorm.DB) TagRepository
	GetOrCreate(name string) (*models.Tag, error)
	GetByName(name string) (*models.Tag, error)
	GetAllWithToolCounts() ([]models.TagWithToolCount, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) WithTx(tx *gorm.DB) TagRepository {
	return &tagRepository{db: tx}
}

// NormalizeTagName folds a tag to its canonical stored form.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetOrCreate resolves a tag name to its row, inserting it on first use.
// Two requests racing on the same new name both hit the unique index; the
// loser re-reads the winner's row instead of failing.
func (r *tagRepository) GetOrCreate(name string) (*models.Tag, error) {
	normalized := NormalizeTagName(name)

	tag, err := r.GetByName(normalized)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := models.Tag{Name: normalized}
	if err := r.db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if tag, lookupErr := r.GetByName(normalized); lookupErr == nil {
				return tag, nil
			}
			return nil, models.ErrorConflict{Message: "tag name conflict: " + normalized}
		}
		return nil, err
	}

	return &created, nil
}

func (r *tagRepository) GetByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	return &tag, err
}

func (r *tagRepository) GetAllWithToolCounts() ([]models.TagWithToolCount, error) {
	var tags []models.TagWithToolCount
	err := r.db.Table("tags").
		Select("tags.id, tags.name, COUNT(DISTINCT tool_tags.tool_id) as tool_count").
		Joins("LEFT JOIN tool_tags ON tool_tags.tag_id = tags.id").
		Where("tags.deleted_at IS NULL").
		Group("tags.id, tags.name").
		Order("tags.name").
		Find(&tags).Error
	return tags, err
}
