package services

import (
	"toolbox-api/models"
	"toolbox-api/repositories"

	"gorm.io/gorm"
)

type TagService interface {
	// ResolveNames maps tag names to rows, creating missing ones. Names
	// differing only in case collapse to a single tag; order of first
	// appearance is preserved.
	ResolveNames(tx *gorm.DB, names []string) ([]models.Tag, error)
	// SyncToolTags reconciles a tool's associations to exactly the given
	// name set. It only writes the difference, so re-syncing an unchanged
	// set touches nothing. Must run on a transaction handle.
	SyncToolTags(tx *gorm.DB, toolID uint, names []string) ([]models.Tag, error)
	GetTags() ([]models.TagWithToolCount, error)
}

type tagService struct {
	tagRepo  repositories.TagRepository
	toolRepo repositories.ToolRepository
}

func NewTagService(tagRepo repositories.TagRepository, toolRepo repositories.ToolRepository) TagService {
	return &tagService{
		tagRepo:  tagRepo,
		toolRepo: toolRepo,
	}
}

func (s *tagService) ResolveNames(tx *gorm.DB, names []string) ([]models.Tag, error) {
	repo := s.tagRepo.WithTx(tx)

	var tags []models.Tag
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		normalized := repositories.NormalizeTagName(name)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true

		tag, err := repo.GetOrCreate(normalized)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}

func (s *tagService) SyncToolTags(tx *gorm.DB, toolID uint, names []string) ([]models.Tag, error) {
	tags, err := s.ResolveNames(tx, names)
	if err != nil {
		return nil, err
	}

	repo := s.toolRepo.WithTx(tx)

	currentIDs, err := repo.GetTagIDs(toolID)
	if err != nil {
		return nil, err
	}

	current := make(map[uint]bool, len(currentIDs))
	for _, id := range currentIDs {
		current[id] = true
	}
	desired := make(map[uint]bool, len(tags))
	for _, tag := range tags {
		desired[tag.ID] = true
	}

	var toAdd, toRemove []uint
	for id := range desired {
		if !current[id] {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range currentIDs {
		if !desired[id] {
			toRemove = append(toRemove, id)
		}
	}

	if err := repo.AddTagAssociations(toolID, toAdd); err != nil {
		return nil, err
	}
	if err := repo.RemoveTagAssociations(toolID, toRemove); err != nil {
		return nil, err
	}

	return tags, nil
}

func (s *tagService) GetTags() ([]models.TagWithToolCount, error) {
	return s.tagRepo.GetAllWithToolCounts()
}
