package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/users"
	"github.com/mrlokans/booklist/internal/entities"
)

// AdminController implements the superuser-only management surface.
// Routes are gated with RequireSuperuser before any handler logic runs.
type AdminController struct {
	users   *users.Repository
	books   *books.Repository
	service *auth.Service
}

// NewAdminController creates a new admin controller.
func NewAdminController(userRepo *users.Repository, bookRepo *books.Repository, service *auth.Service) *AdminController {
	return &AdminController{
		users:   userRepo,
		books:   bookRepo,
		service: service,
	}
}

type adminUpdateUserRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	IsStaff     *bool   `json:"is_staff"`
	IsSuperuser *bool   `json:"is_superuser"`
	IsActive    *bool   `json:"is_active"`
	Password    *string `json:"password"`
}

type adminCreateBookRequest struct {
	createBookRequest
	User *uint `json:"user"`
}

// ListUsers returns every account.
// GET /api/admin/users
func (ac *AdminController) ListUsers(c *gin.Context) {
	all, err := ac.users.GetAll()
	if err != nil {
		respondInternalError(c, err, "list users")
		return
	}

	responses := make([]UserResponse, 0, len(all))
	for i := range all {
		responses = append(responses, newUserResponse(&all[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// UpdateUser applies a partial update to any account, re-hashing the
// password when one is supplied.
// PATCH /api/admin/users/:id
func (ac *AdminController) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	fields := map[string]any{}
	if req.Username != nil {
		taken, err := ac.users.UsernameTaken(*req.Username, id)
		if err != nil {
			respondInternalError(c, err, "check username")
			return
		}
		if taken {
			respondValidationErrors(c, map[string]string{
				"username": "a user with that username already exists",
			})
			return
		}
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.IsStaff != nil {
		fields["is_staff"] = *req.IsStaff
	}
	if req.IsSuperuser != nil {
		fields["is_superuser"] = *req.IsSuperuser
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.Password != nil {
		hash, err := ac.service.HashNewPassword(*req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooShort) || errors.Is(err, auth.ErrPasswordTooLong) {
				respondValidationErrors(c, map[string]string{"password": err.Error()})
				return
			}
			respondInternalError(c, err, "hash password")
			return
		}
		fields["password_hash"] = hash
	}

	updated, err := ac.users.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user")
			return
		}
		respondInternalError(c, err, "update user")
		return
	}

	c.JSON(http.StatusOK, newUserResponse(updated))
}

// DeleteUser removes an account. The delete cascades to the user's books
// and to every mark row referencing the user or those books.
// DELETE /api/admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.users.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user")
			return
		}
		respondInternalError(c, err, "delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBooks returns the catalog across all owners.
// GET /api/admin/books
func (ac *AdminController) ListBooks(c *gin.Context) {
	all, err := ac.books.GetAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	responses := make([]BookResponse, 0, len(all))
	for i := range all {
		responses = append(responses, newBookResponse(&all[i], nil))
	}
	c.JSON(http.StatusOK, responses)
}

// CreateBook adds a book on behalf of an explicit target user. Unlike the
// regular create endpoint there is no default-self assignment: a missing
// user id is a 400, an unknown one a 404.
// POST /api/admin/books
func (ac *AdminController) CreateBook(c *gin.Context) {
	var req adminCreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if req.User == nil {
		respondValidationErrors(c, map[string]string{"user": "this field is required"})
		return
	}
	if fieldErrs := req.validate(); len(fieldErrs) > 0 {
		respondValidationErrors(c, fieldErrs)
		return
	}

	owner, err := ac.users.GetByID(*req.User)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "user")
			return
		}
		respondInternalError(c, err, "get user")
		return
	}

	book := &entities.Book{
		UserID:      owner.ID,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		ISBN:        req.ISBN,
		Genre:       req.Genre,
		CoverURL:    req.CoverURL,
	}
	if err := ac.books.Create(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, newBookResponse(book, nil))
}

// UpdateBook applies a partial update to any book regardless of owner.
// PATCH /api/admin/books/:id
func (ac *AdminController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		book, err := ac.books.GetByID(id)
		if err != nil {
			respondNotFound(c, "book")
			return
		}
		c.JSON(http.StatusOK, newBookResponse(book, nil))
		return
	}

	updated, err := ac.books.Update(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "update book")
		return
	}

	c.JSON(http.StatusOK, newBookResponse(updated, nil))
}

// DeleteBook removes any book regardless of owner.
// DELETE /api/admin/books/:id
func (ac *AdminController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.books.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "delete book")
		return
	}

	c.Status(http.StatusNoContent)
}
