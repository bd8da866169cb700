package services

import (
	"errors"
	"fmt"

	"toolbox-api/config"
	"toolbox-api/models"
	"toolbox-api/repositories"

	"gorm.io/gorm"
)

type ToolService interface {
	GetTools(params models.ToolListParams, userID uint) ([]models.Tool, int64, error)
	GetTool(id uint, userID uint) (*models.Tool, error)
	CreateTool(req models.CreateToolRequest, userID uint) (*models.Tool, error)
	BulkCreateTools(req models.BulkCreateToolRequest, userID uint) ([]models.Tool, error)
	UpdateTool(id uint, req models.UpdateToolRequest, userID uint) (*models.Tool, error)
	DeleteTool(id uint, userID uint) error
}

type toolService struct {
	db         *gorm.DB
	toolRepo   repositories.ToolRepository
	tagService TagService
	policy     ToolPolicy
}

func NewToolService(db *gorm.DB, toolRepo repositories.ToolRepository, tagService TagService) ToolService {
	return &toolService{
		db:         db,
		toolRepo:   toolRepo,
		tagService: tagService,
	}
}

// GetTools lists with optional tag filter. Under the owner-scoped
// deployment policy the query is always restricted to the acting user;
// under the global policy everyone sees everything (no per-request
// override, since ViewAny is denied across the board).
func (s *toolService) GetTools(params models.ToolListParams, userID uint) ([]models.Tool, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	if config.ListingScope == config.ListingOwnerScoped {
		params.UserID = userID
	} else {
		params.UserID = 0
	}

	return s.toolRepo.GetList(params)
}

func (s *toolService) GetTool(id uint, userID uint) (*models.Tool, error) {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Tool not found"}
		}
		return nil, err
	}

	if !s.policy.View(userID, tool) {
		return nil, s.policy.DenialError()
	}

	return tool, nil
}

// CreateTool inserts the tool and synchronizes its tags in one
// transaction. The owner always comes from the acting user, never from
// the payload.
func (s *toolService) CreateTool(req models.CreateToolRequest, userID uint) (*models.Tool, error) {
	var created *models.Tool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tool, err := s.createToolWithTags(tx, req, userID)
		if err != nil {
			return err
		}
		created = tool
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toolRepo.GetByID(created.ID)
}

// BulkCreateTools creates every item, in order, inside a single
// transaction. Any failure rolls the whole batch back; the error names
// the offending item index.
func (s *toolService) BulkCreateTools(req models.BulkCreateToolRequest, userID uint) ([]models.Tool, error) {
	var created []models.Tool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, item := range req.Tools {
			tool, err := s.createToolWithTags(tx, item, userID)
			if err != nil {
				return fmt.Errorf("tool at index %d: %w", i, err)
			}
			created = append(created, *tool)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tools := make([]models.Tool, len(created))
	for i := range created {
		tool, err := s.toolRepo.GetByID(created[i].ID)
		if err != nil {
			return nil, err
		}
		tools[i] = *tool
	}

	return tools, nil
}

func (s *toolService) createToolWithTags(tx *gorm.DB, req models.CreateToolRequest, userID uint) (*models.Tool, error) {
	tool := &models.Tool{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	repo := s.toolRepo.WithTx(tx)
	if err := repo.Create(tool); err != nil {
		return nil, err
	}

	tags, err := s.tagService.SyncToolTags(tx, tool.ID, req.Tags)
	if err != nil {
		return nil, err
	}
	tool.Tags = tags

	return tool, nil
}

func (s *toolService) UpdateTool(id uint, req models.UpdateToolRequest, userID uint) (*models.Tool, error) {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Tool not found"}
		}
		return nil, err
	}

	if !s.policy.Update(userID, tool) {
		return nil, s.policy.DenialError()
	}

	if req.Title != nil {
		tool.Title = *req.Title
	}
	if req.Description != nil {
		tool.Description = *req.Description
	}
	if req.Link != nil {
		tool.Link = *req.Link
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.toolRepo.WithTx(tx).Update(tool); err != nil {
			return err
		}
		if req.Tags != nil {
			if _, err := s.tagService.SyncToolTags(tx, tool.ID, *req.Tags); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toolRepo.GetByID(tool.ID)
}

// DeleteTool removes the tool and its tag associations in one
// transaction. Shared tag rows are left in place even if this was the
// last tool referencing them.
func (s *toolService) DeleteTool(id uint, userID uint) error {
	tool, err := s.toolRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Tool not found"}
		}
		return err
	}

	if !s.policy.Delete(userID, tool) {
		return s.policy.DenialError()
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.toolRepo.WithTx(tx)

		currentIDs, err := repo.GetTagIDs(tool.ID)
		if err != nil {
			return err
		}
		if err := repo.RemoveTagAssociations(tool.ID, currentIDs); err != nil {
			return err
		}

		return repo.Delete(tool.ID)
	})
}
