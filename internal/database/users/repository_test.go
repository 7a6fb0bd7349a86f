package users

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/booklist/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_users_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Book{}, &entities.UserBook{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func newTestUser(username string) *entities.User {
	return &entities.User{
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Email:        username + "@example.com",
		IsActive:     true,
		DateJoined:   time.Now(),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	user := newTestUser("reader")
	err := repo.Create(user)

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "reader", user.Username)
}

func TestRepository_Create_DuplicateUsername(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Create(newTestUser("reader")))

	err := repo.Create(newTestUser("reader"))

	assert.Error(t, err)
}

func TestRepository_GetByUsername(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created := newTestUser("reader")
	require.NoError(t, repo.Create(created))

	user, err := repo.GetByUsername("reader")

	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByUsername("nobody")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetAll_OrderedByJoinDate(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	older := newTestUser("first")
	older.DateJoined = time.Now().Add(-time.Hour)
	newer := newTestUser("second")

	require.NoError(t, repo.Create(newer))
	require.NoError(t, repo.Create(older))

	users, err := repo.GetAll()

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
}

func TestRepository_Update_PartialFields(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	user := newTestUser("reader")
	require.NoError(t, repo.Create(user))

	updated, err := repo.Update(user.ID, map[string]any{
		"first_name": "Ada",
		"is_staff":   true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada", updated.FirstName)
	assert.True(t, updated.IsStaff)
	// Untouched columns keep their values
	assert.Equal(t, "reader", updated.Username)
	assert.True(t, updated.IsActive)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Update(999, map[string]any{"first_name": "Ada"})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete_CascadesToBooksAndMarks(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	user := newTestUser("reader")
	require.NoError(t, repo.Create(user))

	book := entities.Book{UserID: user.ID, Title: "Dune", Author: "Frank Herbert", Description: "Desert planet"}
	require.NoError(t, db.Create(&book).Error)
	require.NoError(t, db.Create(&entities.UserBook{UserID: user.ID, BookID: book.ID, Read: true}).Error)

	err := repo.Delete(user.ID)
	require.NoError(t, err)

	var bookCount, markCount int64
	db.Model(&entities.Book{}).Count(&bookCount)
	db.Model(&entities.UserBook{}).Count(&markCount)
	assert.Zero(t, bookCount)
	assert.Zero(t, markCount)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Delete(999)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UsernameTaken(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	user := newTestUser("reader")
	require.NoError(t, repo.Create(user))

	taken, err := repo.UsernameTaken("reader", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.UsernameTaken("reader", user.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a user's own name does not count against them")

	taken, err = repo.UsernameTaken("someone-else", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}
