package services

import (
	"testing"

	"toolbox-api/config"
	"toolbox-api/models"

	"github.com/stretchr/testify/require"
)

func TestToolPolicyOwnershipChecks(t *testing.T) {
	var policy ToolPolicy
	tool := &models.Tool{ID: 1, UserID: 7}

	require.True(t, policy.View(7, tool))
	require.True(t, policy.Update(7, tool))
	require.True(t, policy.Delete(7, tool))

	require.False(t, policy.View(8, tool))
	require.False(t, policy.Update(8, tool))
	require.False(t, policy.Delete(8, tool))
}

func TestToolPolicyDeniesBlanketAbilities(t *testing.T) {
	var policy ToolPolicy

	// Listing and creation never pass through the per-instance guard;
	// they are scoped and owner-forced elsewhere.
	require.False(t, policy.ViewAny(7))
	require.False(t, policy.Create(7))
}

func TestToolPolicyDenialErrorFollowsConfig(t *testing.T) {
	var policy ToolPolicy

	previous := config.CrossOwnerDenial
	defer func() { config.CrossOwnerDenial = previous }()

	config.CrossOwnerDenial = config.DenyNotFound
	require.IsType(t, models.ErrorNotFound{}, policy.DenialError())

	config.CrossOwnerDenial = config.DenyForbidden
	require.IsType(t, models.ErrorForbidden{}, policy.DenialError())
}
