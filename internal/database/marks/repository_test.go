package marks

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/booklist/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_marks_" + t.Name() + ".db"

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

func seedUserAndBook(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()

	user := entities.User{
		Username:     "reader",
		PasswordHash: "not-a-real-hash",
		Email:        "reader@example.com",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)

	book := entities.Book{
		UserID:      user.ID,
		Title:       "Dune",
		Author:      "Frank Herbert",
		Description: "Desert planet",
	}
	require.NoError(t, db.Create(&book).Error)

	return user.ID, book.ID
}

func boolPtr(v bool) *bool { return &v }

func TestRepository_Upsert_CreatesWithDefaults(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	mark, created, err := repo.Upsert(userID, bookID, Patch{Read: boolPtr(true)})

	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, mark.Read)
	// Omitted flags default to false on create
	assert.False(t, mark.Bought)
	assert.False(t, mark.OnBookshelf)
}

func TestRepository_Upsert_MergesIntoExisting(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	_, _, err := repo.Upsert(userID, bookID, Patch{Read: boolPtr(true)})
	require.NoError(t, err)

	mark, created, err := repo.Upsert(userID, bookID, Patch{Bought: boolPtr(true)})

	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, mark.Bought)
	// A flag omitted from the second payload keeps its stored value
	assert.True(t, mark.Read)
}

func TestRepository_Upsert_SinglePairRow(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	for i := 0; i < 3; i++ {
		_, _, err := repo.Upsert(userID, bookID, Patch{OnBookshelf: boolPtr(true)})
		require.NoError(t, err)
	}

	var count int64
	db.Model(&entities.UserBook{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRepository_Upsert_ExplicitFalseWins(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	_, _, err := repo.Upsert(userID, bookID, Patch{Read: boolPtr(true)})
	require.NoError(t, err)

	mark, _, err := repo.Upsert(userID, bookID, Patch{Read: boolPtr(false)})

	require.NoError(t, err)
	assert.False(t, mark.Read)
}

func TestRepository_Update_NeverCreates(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	_, err := repo.Update(userID, bookID, Patch{Read: boolPtr(true)})

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&entities.UserBook{}).Count(&count)
	assert.Zero(t, count)
}

func TestRepository_Update_MergesFlags(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	_, _, err := repo.Upsert(userID, bookID, Patch{Bought: boolPtr(true)})
	require.NoError(t, err)

	mark, err := repo.Update(userID, bookID, Patch{OnBookshelf: boolPtr(true)})

	require.NoError(t, err)
	assert.True(t, mark.Bought)
	assert.True(t, mark.OnBookshelf)
	assert.False(t, mark.Read)
}

func TestRepository_Delete(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	_, _, err := repo.Upsert(userID, bookID, Patch{Read: boolPtr(true)})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(userID, bookID))

	_, err = repo.Get(userID, bookID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	err := repo.Delete(userID, bookID)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetAllForUser_KeyedByBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	userID, bookID := seedUserAndBook(t, db)

	other := entities.Book{UserID: userID, Title: "Foundation", Author: "Isaac Asimov", Description: "Psychohistory"}
	require.NoError(t, db.Create(&other).Error)

	_, _, err := repo.Upsert(userID, bookID, Patch{Read: boolPtr(true)})
	require.NoError(t, err)
	_, _, err = repo.Upsert(userID, other.ID, Patch{Bought: boolPtr(true)})
	require.NoError(t, err)

	marks, err := repo.GetAllForUser(userID)

	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.True(t, marks[bookID].Read)
	assert.True(t, marks[other.ID].Bought)
}
