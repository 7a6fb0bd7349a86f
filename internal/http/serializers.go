package http

import (
	"time"

	"github.com/mrlokans/booklist/internal/entities"
)

// Explicit projection structs per entity per endpoint. Entities are never
// serialized directly, so adding a column later cannot leak it into a
// response by accident.

// UserResponse is the public user projection used by login, profile and the
// admin surface, and nested inside books as the owner.
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	DateJoined  time.Time `json:"date_joined"`
}

// RegisteredUserResponse is the narrower projection returned on signup.
type RegisteredUserResponse struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// MarkResponse is the per-user mark projection. Field names mirror the
// client contract: onBookshelf, not on_bookshelf.
type MarkResponse struct {
	ID          uint      `json:"id"`
	BookID      uint      `json:"book_id"`
	Bought      bool      `json:"bought"`
	Read        bool      `json:"read"`
	OnBookshelf bool      `json:"onBookshelf"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookResponse is the catalog projection, with owner info and the calling
// user's own mark (null when anonymous or unmarked).
type BookResponse struct {
	ID          uint          `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Description string        `json:"description"`
	ISBN        string        `json:"isbn"`
	Genre       string        `json:"genre"`
	Cover       string        `json:"cover"`
	CoverURL    string        `json:"coverUrl"`
	User        UserResponse  `json:"user"`
	UserMark    *MarkResponse `json:"user_mark"`
}

// TokenPairResponse is the login payload.
type TokenPairResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    UserResponse `json:"user"`
}

func newUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsStaff:     user.IsStaff,
		IsSuperuser: user.IsSuperuser,
		IsActive:    user.IsActive,
		DateJoined:  user.DateJoined,
	}
}

func newRegisteredUserResponse(user *entities.User) RegisteredUserResponse {
	return RegisteredUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func newMarkResponse(mark *entities.UserBook) *MarkResponse {
	if mark == nil {
		return nil
	}
	return &MarkResponse{
		ID:          mark.ID,
		BookID:      mark.BookID,
		Bought:      mark.Bought,
		Read:        mark.Read,
		OnBookshelf: mark.OnBookshelf,
		CreatedAt:   mark.CreatedAt,
		UpdatedAt:   mark.UpdatedAt,
	}
}

func newBookResponse(book *entities.Book, mark *entities.UserBook) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		ISBN:        book.ISBN,
		Genre:       book.Genre,
		Cover:       book.Cover,
		CoverURL:    book.CoverURL,
		User:        newUserResponse(&book.User),
		UserMark:    newMarkResponse(mark),
	}
}
