package entities

import (
	"time"
)

// User is an account that can own books and mark books in the catalog.
// PasswordHash is never serialized; API responses use explicit projection
// structs in internal/http instead of these models.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Email        string    `gorm:"size:254" json:"email"`
	FirstName    string    `gorm:"size:150" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	DateJoined   time.Time `json:"date_joined"`

	Books []Book     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Marks []UserBook `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Book is a catalog entry. Every book has exactly one owning user: the
// uploader. Books are publicly readable but only the owner (or a superuser)
// may mutate or delete them.
type Book struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Title       string `gorm:"index;size:512;not null" json:"title"`
	Author      string `gorm:"index;size:256;not null" json:"author"`
	Description string `gorm:"type:text;not null" json:"description"`
	ISBN        string `gorm:"index;size:20" json:"isbn,omitempty"`
	Genre       string `gorm:"size:100" json:"genre,omitempty"`
	Cover       string `gorm:"size:1024" json:"cover,omitempty"`     // stored upload, relative to media dir
	CoverURL    string `gorm:"size:2048" json:"cover_url,omitempty"` // external image link

	User  User       `gorm:"foreignKey:UserID" json:"-"`
	Marks []UserBook `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserBook is a per-user annotation on a book: three independent flags.
// At most one row exists per (user, book) pair; the absence of a row means
// "never marked", which is distinct from a row with all flags false.
type UserBook struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	UserID      uint `gorm:"uniqueIndex:idx_user_book;not null" json:"user_id"`
	BookID      uint `gorm:"uniqueIndex:idx_user_book;not null" json:"book_id"`
	Bought      bool `gorm:"default:false" json:"bought"`
	Read        bool `gorm:"default:false" json:"read"`
	OnBookshelf bool `gorm:"default:false" json:"on_bookshelf"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Book Book `gorm:"foreignKey:BookID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (Book) TableName() string {
	return "books"
}

func (UserBook) TableName() string {
	return "user_books"
}
