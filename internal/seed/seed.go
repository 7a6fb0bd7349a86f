// Package seed populates the database with a default superuser and an
// embedded catalog of real books.
package seed

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/users"
	"github.com/mrlokans/booklist/internal/entities"
)

// Book is one embedded catalog entry.
type Book struct {
	Title       string
	Author      string
	Description string
	ISBN        string
	Genre       string
	CoverURL    string
}

// Default credentials for the seeded superuser. Meant for local development;
// change the password immediately on any shared deployment.
const (
	AdminUsername = "bookadmin"
	AdminEmail    = "admin@books.com"
	AdminPassword = "admin123"
)

// Seeder loads the embedded catalog into the database.
type Seeder struct {
	users  *users.Repository
	books  *books.Repository
	config config.Auth
}

// NewSeeder creates a seeder over the given repositories.
func NewSeeder(userRepo *users.Repository, bookRepo *books.Repository, cfg config.Auth) *Seeder {
	return &Seeder{
		users:  userRepo,
		books:  bookRepo,
		config: cfg,
	}
}

// Run ensures the default superuser exists, clears the existing catalog and
// inserts the embedded book list owned by that user.
func (s *Seeder) Run() error {
	admin, err := s.ensureAdmin()
	if err != nil {
		return err
	}

	if err := s.books.DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear existing books: %w", err)
	}
	log.Printf("Cleared existing books")

	for _, entry := range Catalog {
		book := &entities.Book{
			UserID:      admin.ID,
			Title:       entry.Title,
			Author:      entry.Author,
			Description: entry.Description,
			ISBN:        entry.ISBN,
			Genre:       entry.Genre,
			CoverURL:    entry.CoverURL,
		}
		if err := s.books.Create(book); err != nil {
			return fmt.Errorf("failed to seed book %q: %w", entry.Title, err)
		}
	}

	log.Printf("Seeded %d books owned by %s", len(Catalog), admin.Username)
	return nil
}

// ensureAdmin returns the seed superuser, creating it on first run. The
// admin password is hashed like any other; AdminPassword is only a bcrypt
// input, never stored.
func (s *Seeder) ensureAdmin() (*entities.User, error) {
	admin, err := s.users.GetByUsername(AdminUsername)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up seed user: %w", err)
	}

	hash, err := auth.HashPassword(AdminPassword, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	admin = &entities.User{
		Username:     AdminUsername,
		PasswordHash: hash,
		Email:        AdminEmail,
		FirstName:    "Book",
		LastName:     "Admin",
		IsStaff:      true,
		IsSuperuser:  true,
		IsActive:     true,
		DateJoined:   time.Now(),
	}
	if err := s.users.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create seed user: %w", err)
	}

	log.Printf("Created default user: %s", AdminUsername)
	return admin, nil
}
