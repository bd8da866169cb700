package services

import (
	"testing"
	"time"

	"toolbox-api/models"
	"toolbox-api/repositories"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestAuthService(db *gorm.DB) AuthService {
	return NewAuthService(repositories.NewUserRepository(db))
}

func TestRegisterIssuesTokenAndHashesPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	response, err := svc.Register(models.RegisterRequest{
		Name:     "Test User",
		Email:    "user@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, response.Token)
	require.NotZero(t, response.User.ID)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(response.User.Password), []byte("secret")))
}

func TestRegisterRejectsExistingEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, err := svc.Register(models.RegisterRequest{
		Name: "First", Email: "taken@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{
		Name: "Second", Email: "taken@example.com", Password: "secret",
	})
	require.IsType(t, models.ErrorConflict{}, err)
}

func TestRegisterLosingEmailRaceIsConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	// One connection keeps the sneaked insert in the same in-memory
	// database as the insert it races.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// Sneak the email in after the pre-check but before the insert, so
	// the insert loses on the unique index. Hooked ahead of the default
	// transaction, which would otherwise already hold the connection.
	raced := false
	err = db.Callback().Create().Before("gorm:begin_transaction").Register("sneak_in_user", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*models.User); !ok || raced {
			return
		}
		raced = true
		now := time.Now()
		db.Exec(
			"INSERT INTO users (name, email, password, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			"Winner", "raced@example.com", "hash", now, now,
		)
	})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{
		Name: "Loser", Email: "raced@example.com", Password: "secret",
	})
	require.True(t, raced)
	require.IsType(t, models.ErrorConflict{}, err)

	var count int64
	db.Model(&models.User{}).Where("email = ?", "raced@example.com").Count(&count)
	require.EqualValues(t, 1, count)
}

func TestLoginRejectsUnknownEmailAndBadPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestAuthService(db)

	_, err := svc.Register(models.RegisterRequest{
		Name: "User", Email: "user@example.com", Password: "secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(models.LoginRequest{Email: "nobody@example.com", Password: "secret"})
	require.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = svc.Login(models.LoginRequest{Email: "user@example.com", Password: "wrong"})
	require.IsType(t, models.ErrorUnauthorized{}, err)
}
