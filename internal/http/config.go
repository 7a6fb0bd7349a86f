package http

import (
	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/covers"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/marks"
	"github.com/mrlokans/booklist/internal/database/users"
)

// RouterConfig contains all dependencies and configuration needed to create
// the HTTP router. This replaces a long parameter list in NewRouter for
// better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Users    *users.Repository
	Books    *books.Repository
	Marks    *marks.Repository

	// Authentication
	AuthService    *auth.Service
	TokenManager   *auth.TokenManager
	AuthMiddleware *auth.Middleware

	// Uploaded cover storage
	CoverStore *covers.Store

	// Application info
	Version string
}
