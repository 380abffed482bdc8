package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"interview_hub_backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM users")
	})
	return db
}

func TestUserRepositoryCreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Name: "Иван", Email: "ivan@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(user))
	require.NotZero(t, user.ID)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", byID.Email)

	byEmail, err := repo.FindByEmail("ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepositoryFindMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail("nobody@example.com")
	assert.Error(t, err)
}

func TestUserRepositoryUpdateLastLogin(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Name: "Анна", Email: "anna@example.com", Password: "hashed"}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdateLastLogin(user.ID))

	updated, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, updated.LastLogin.IsZero())
}
