// Package books provides database operations for the book catalog.
package books

import (
	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new book. The caller is responsible for setting UserID
// to the owning user; it is never taken from client input.
func (r *Repository) Create(book *entities.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return err
	}
	return r.db.Preload("User").First(book, book.ID).Error
}

// GetByID retrieves a book with its owner preloaded.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("User").First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAll returns the whole catalog ordered by author name ascending.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("User").Order("author ASC").Find(&books).Error
	return books, err
}

// GetAllForUser returns the books owned by a single user, ordered by author.
func (r *Repository) GetAllForUser(userID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("User").Where("user_id = ?", userID).Order("author ASC").Find(&books).Error
	return books, err
}

// Search finds books whose title or author matches the query, case-insensitively.
func (r *Repository) Search(query string) ([]entities.Book, error) {
	var books []entities.Book
	pattern := "%" + query + "%"
	err := r.db.Preload("User").
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?)", pattern, pattern).
		Order("author ASC").
		Find(&books).Error
	return books, err
}

// Update applies a partial update and returns the refreshed book.
func (r *Repository) Update(id uint, fields map[string]any) (*entities.Book, error) {
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete removes a book. Mark rows referencing it are cascaded by the
// foreign key constraint.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll clears the catalog. Used by the seed command before reseeding.
func (r *Repository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Book{}).Error
}
