package services

import (
	"testing"

	"toolbox-api/models"
	"toolbox-api/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newTestTagService(db *gorm.DB) TagService {
	return NewTagService(repositories.NewTagRepository(db), repositories.NewToolRepository(db))
}

func createTestTool(t *testing.T, db *gorm.DB, userID uint, title string) models.Tool {
	tool := models.Tool{
		UserID:      userID,
		Title:       title,
		Description: "A tool",
		Link:        "https://example.com/" + title,
	}
	if err := db.Create(&tool).Error; err != nil {
		t.Fatalf("Failed to create test tool: %v", err)
	}
	return tool
}

func associatedTagNames(t *testing.T, db *gorm.DB, toolID uint) []string {
	var names []string
	err := db.Table("tags").
		Joins("JOIN tool_tags ON tool_tags.tag_id = tags.id").
		Where("tool_tags.tool_id = ?", toolID).
		Order("tags.name").
		Pluck("tags.name", &names).Error
	require.NoError(t, err)
	return names
}

func TestSyncReplacesAssociationsWholesale(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestTagService(db)
	tool := createTestTool(t, db, 1, "tool")

	_, err := svc.SyncToolTags(db, tool.ID, []string{"php", "laravel"})
	require.NoError(t, err)
	require.Equal(t, []string{"laravel", "php"}, associatedTagNames(t, db, tool.ID))

	_, err = svc.SyncToolTags(db, tool.ID, []string{"laravel", "docker"})
	require.NoError(t, err)
	require.Equal(t, []string{"docker", "laravel"}, associatedTagNames(t, db, tool.ID))
}

func TestSyncCollapsesCaseVariants(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestTagService(db)
	tool := createTestTool(t, db, 1, "tool")

	tags, err := svc.SyncToolTags(db, tool.ID, []string{"PHP", "php", "Laravel"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	require.Equal(t, []string{"laravel", "php"}, associatedTagNames(t, db, tool.ID))

	var tagCount int64
	db.Model(&models.Tag{}).Count(&tagCount)
	require.EqualValues(t, 2, tagCount)
}

func TestSyncWithEmptySetClearsAssociations(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestTagService(db)
	tool := createTestTool(t, db, 1, "tool")

	_, err := svc.SyncToolTags(db, tool.ID, []string{"php"})
	require.NoError(t, err)

	_, err = svc.SyncToolTags(db, tool.ID, nil)
	require.NoError(t, err)
	require.Empty(t, associatedTagNames(t, db, tool.ID))

	// The tag row itself stays; only the association goes.
	var tagCount int64
	db.Model(&models.Tag{}).Count(&tagCount)
	require.EqualValues(t, 1, tagCount)
}

func TestSyncUnchangedSetIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestTagService(db)
	tool := createTestTool(t, db, 1, "tool")

	first, err := svc.SyncToolTags(db, tool.ID, []string{"php", "node"})
	require.NoError(t, err)

	second, err := svc.SyncToolTags(db, tool.ID, []string{"php", "node"})
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
	}

	var associationCount int64
	db.Model(&models.ToolTag{}).Count(&associationCount)
	require.EqualValues(t, 2, associationCount)

	var tagCount int64
	db.Model(&models.Tag{}).Count(&tagCount)
	require.EqualValues(t, 2, tagCount)
}

func TestResolveNamesSharesTagsAcrossTools(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestTagService(db)

	first, err := svc.ResolveNames(db, []string{"shared"})
	require.NoError(t, err)

	second, err := svc.ResolveNames(db, []string{"SHARED"})
	require.NoError(t, err)
	require.Equal(t, first[0].ID, second[0].ID)
}

func TestGetTagsReturnsVocabularyWithCounts(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestTagService(db)
	tool := createTestTool(t, db, 1, "tool")

	_, err := svc.SyncToolTags(db, tool.ID, []string{"jenkins"})
	require.NoError(t, err)

	tags, err := svc.GetTags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "jenkins", tags[0].Name)
	require.Equal(t, 1, tags[0].ToolCount)
}
