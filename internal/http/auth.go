package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/auth"
)

// AuthController handles login, registration and token refresh.
type AuthController struct {
	service *auth.Service
	tokens  *auth.TokenManager
}

// NewAuthController creates a new authentication controller.
func NewAuthController(service *auth.Service, tokens *auth.TokenManager) *AuthController {
	return &AuthController{
		service: service,
		tokens:  tokens,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// Login verifies credentials and returns an access/refresh token pair with
// the public user projection.
// POST /api/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := ac.service.Authenticate(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountDeactivated):
			respondForbidden(c, "account deactivated")
		case errors.Is(err, auth.ErrInvalidCredentials):
			// Unknown username and wrong password answer identically.
			respondUnauthorized(c, "invalid credentials")
		default:
			respondInternalError(c, err, "login")
		}
		return
	}

	access, refresh, err := ac.tokens.IssuePair(user.ID)
	if err != nil {
		respondInternalError(c, err, "issue tokens")
		return
	}

	c.JSON(200, TokenPairResponse{
		Access:  access,
		Refresh: refresh,
		User:    newUserResponse(user),
	})
}

// Register creates a new account.
// POST /api/register
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := ac.service.Register(auth.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		var fieldErrs auth.FieldErrors
		if errors.As(err, &fieldErrs) {
			respondValidationErrors(c, fieldErrs)
			return
		}
		respondInternalError(c, err, "register")
		return
	}

	respondCreated(c, newRegisteredUserResponse(user))
}

// Refresh mints a new access token from a valid refresh token.
// POST /api/token/refresh
func (ac *AuthController) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "refresh token is required")
		return
	}

	userID, err := ac.tokens.VerifyRefresh(req.Refresh)
	if err != nil {
		respondUnauthorized(c, "invalid or expired refresh token")
		return
	}

	// The account must still be active when the token is redeemed.
	if _, err := ac.service.GetActiveUser(userID); err != nil {
		respondUnauthorized(c, "invalid or expired refresh token")
		return
	}

	access, err := ac.tokens.IssueAccess(userID)
	if err != nil {
		respondInternalError(c, err, "refresh token")
		return
	}

	c.JSON(200, gin.H{"access": access})
}

// ChangePassword replaces the caller's password after verifying the old one.
// POST /api/change-password
func (ac *AuthController) ChangePassword(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "old_password and new_password are required")
		return
	}

	err := ac.service.ChangePassword(user.ID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidPassword):
			respondBadRequest(c, "old password is incorrect")
		case errors.Is(err, auth.ErrPasswordTooShort):
			respondBadRequest(c, auth.ErrPasswordTooShort.Error())
		case errors.Is(err, auth.ErrPasswordTooLong):
			respondBadRequest(c, auth.ErrPasswordTooLong.Error())
		default:
			respondInternalError(c, err, "change password")
		}
		return
	}

	respondSuccess(c, "password updated")
}
