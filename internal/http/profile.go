package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/database/users"
)

// ProfileController handles self-service account management.
type ProfileController struct {
	users   *users.Repository
	service *auth.Service
}

// NewProfileController creates a new profile controller.
func NewProfileController(userRepo *users.Repository, service *auth.Service) *ProfileController {
	return &ProfileController{
		users:   userRepo,
		service: service,
	}
}

type updateProfileRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
}

// Get returns the caller's own projection.
// GET /api/profile
func (pc *ProfileController) Get(c *gin.Context) {
	user := auth.CurrentUser(c)
	c.JSON(http.StatusOK, newUserResponse(user))
}

// Update applies a partial update to the caller's own account. A supplied
// password is re-hashed before storage without an old-password check; see
// the change-password endpoint for the verified path.
// PATCH /api/profile
func (pc *ProfileController) Update(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	fields := map[string]any{}
	if req.Username != nil {
		taken, err := pc.users.UsernameTaken(*req.Username, user.ID)
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
	if req.Password != nil {
		hash, err := pc.service.HashNewPassword(*req.Password)
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

	if len(fields) == 0 {
		c.JSON(http.StatusOK, newUserResponse(user))
		return
	}

	updated, err := pc.users.Update(user.ID, fields)
	if err != nil {
		respondInternalError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, newUserResponse(updated))
}
