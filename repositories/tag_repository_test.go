package repositories

import (
	"testing"
	"time"

	"toolbox-api/models"

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

func TestGetOrCreateInsertsOnFirstUse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	tag, err := repo.GetOrCreate("docker")
	require.NoError(t, err)
	require.NotZero(t, tag.ID)
	require.Equal(t, "docker", tag.Name)

	var count int64
	db.Model(&models.Tag{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGetOrCreateIsCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	upper, err := repo.GetOrCreate("PHP")
	require.NoError(t, err)

	lower, err := repo.GetOrCreate("php")
	require.NoError(t, err)

	require.Equal(t, upper.ID, lower.ID)
	require.Equal(t, "php", lower.Name)

	var count int64
	db.Model(&models.Tag{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGetOrCreateTrimsWhitespace(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	tag, err := repo.GetOrCreate("  React ")
	require.NoError(t, err)
	require.Equal(t, "react", tag.Name)
}

func TestGetOrCreateReturnsExistingRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	first, err := repo.GetOrCreate("laravel")
	require.NoError(t, err)

	second, err := repo.GetOrCreate("laravel")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestGetOrCreateLosingInsertRaceReturnsWinnerRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	// One connection keeps the sneaked insert in the same in-memory
	// database as the insert it races.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Sneak the row in after the lookup miss but before the insert, so
	// the insert loses on the unique index. Hooked ahead of the default
	// transaction, which would otherwise already hold the connection.
	raced := false
	err = db.Callback().Create().Before("gorm:begin_transaction").Register("sneak_in_tag", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.Tag); !ok || raced {
			return
		}
		raced = true
		now := time.Now()
		db.Exec("INSERT INTO tags (name, created_at, updated_at) VALUES (?, ?, ?)", "golang", now, now)
	})
	require.NoError(t, err)

	tag, err := repo.GetOrCreate("golang")
	require.NoError(t, err)
	require.True(t, raced)
	require.NotZero(t, tag.ID)
	require.Equal(t, "golang", tag.Name)

	var count int64
	db.Model(&models.Tag{}).Where("name = ?", "golang").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGetAllWithToolCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTagRepository(db)

	golang, err := repo.GetOrCreate("golang")
	require.NoError(t, err)
	_, err = repo.GetOrCreate("unused")
	require.NoError(t, err)

	tool := models.Tool{UserID: 1, Title: "Gorm", Description: "ORM", Link: "https://gorm.io"}
	require.NoError(t, db.Create(&tool).Error)
	require.NoError(t, db.Create(&models.ToolTag{ToolID: tool.ID, TagID: golang.ID}).Error)

	tags, err := repo.GetAllWithToolCounts()
	require.NoError(t, err)
	require.Len(t, tags, 2)

	byName := map[string]int{}
	for _, tag := range tags {
		byName[tag.Name] = tag.ToolCount
	}
	require.Equal(t, 1, byName["golang"])
	require.Equal(t, 0, byName["unused"])
}
