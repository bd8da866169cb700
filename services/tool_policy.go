package services

import (
	"toolbox-api/config"
	"toolbox-api/models"
)

// ToolPolicy decides per-instance access. Creation is not granted here at
// all: the create paths authorize implicitly by forcing the owner to the
// acting user.
type ToolPolicy struct{}

func (ToolPolicy) ViewAny(userID uint) bool {
	return false
}

func (ToolPolicy) Create(userID uint) bool {
	return false
}

func (ToolPolicy) View(userID uint, tool *models.Tool) bool {
	return userID == tool.UserID
}

func (ToolPolicy) Update(userID uint, tool *models.Tool) bool {
	return userID == tool.UserID
}

func (ToolPolicy) Delete(userID uint, tool *models.Tool) bool {
	return userID == tool.UserID
}

// DenialError is what a failed ownership check surfaces as. Depending on
// deployment policy it either hides the tool's existence (404) or admits
// it while refusing access (403).
func (ToolPolicy) DenialError() error {
	if config.CrossOwnerDenial == config.DenyForbidden {
		return models.ErrorForbidden{Message: "You do not own this tool"}
	}
	return models.ErrorNotFound{Message: "Tool not found"}
}
