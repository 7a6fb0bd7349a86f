// Package marks provides database operations for per-user book marks.
//
// A mark is a single row per (user, book) pair holding three independent
// boolean flags. The pair is covered by a unique index, and writes go
// through an atomic upsert so two concurrent first-marks for the same pair
// cannot produce a duplicate-row error.
package marks

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/booklist/internal/entities"
)

// Patch carries the flags present in a mark payload. A nil field means the
// client omitted the flag: on create it defaults to false, on update the
// stored value is kept.
type Patch struct {
	Bought      *bool
	Read        *bool
	OnBookshelf *bool
}

// assignments returns the column updates for the supplied flags only.
func (p Patch) assignments() map[string]any {
	fields := map[string]any{"updated_at": time.Now()}
	if p.Bought != nil {
		fields["bought"] = *p.Bought
	}
	if p.Read != nil {
		fields["read"] = *p.Read
	}
	if p.OnBookshelf != nil {
		fields["on_bookshelf"] = *p.OnBookshelf
	}
	return fields
}

// Repository handles all mark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new marks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves the mark for a (user, book) pair.
func (r *Repository) Get(userID, bookID uint) (*entities.UserBook, error) {
	var mark entities.UserBook
	err := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).First(&mark).Error
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

// Upsert creates the mark if the pair has no row, or merges the supplied
// flags into the existing row. The write is a single INSERT ... ON CONFLICT
// so concurrent requests for the same new pair resolve inside the storage
// engine rather than through a check-then-insert race. The returned bool
// reports whether a new row was created.
func (r *Repository) Upsert(userID, bookID uint, patch Patch) (*entities.UserBook, bool, error) {
	_, err := r.Get(userID, bookID)
	existed := err == nil
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	row := entities.UserBook{
		UserID:      userID,
		BookID:      bookID,
		Bought:      patch.Bought != nil && *patch.Bought,
		Read:        patch.Read != nil && *patch.Read,
		OnBookshelf: patch.OnBookshelf != nil && *patch.OnBookshelf,
	}

	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(patch.assignments()),
	}).Create(&row).Error
	if err != nil {
		return nil, false, err
	}

	mark, err := r.Get(userID, bookID)
	if err != nil {
		return nil, false, err
	}
	return mark, !existed, nil
}

// Update merges the supplied flags into an existing mark. Unlike Upsert it
// never creates a row: gorm.ErrRecordNotFound is returned when the pair has
// no mark.
func (r *Repository) Update(userID, bookID uint, patch Patch) (*entities.UserBook, error) {
	result := r.db.Model(&entities.UserBook{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Updates(patch.assignments())
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Get(userID, bookID)
}

// Delete removes the mark for a pair, reporting gorm.ErrRecordNotFound if
// no row exists.
func (r *Repository) Delete(userID, bookID uint) error {
	result := r.db.Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&entities.UserBook{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAllForUser returns every mark a user has made, keyed by book ID.
// Used to decorate catalog listings for an authenticated caller.
func (r *Repository) GetAllForUser(userID uint) (map[uint]entities.UserBook, error) {
	var rows []entities.UserBook
	if err := r.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	marks := make(map[uint]entities.UserBook, len(rows))
	for _, m := range rows {
		marks[m.BookID] = m
	}
	return marks, nil
}
