package auth

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/database/users"
	"github.com/mrlokans/booklist/internal/entities"
)

// Validation patterns
var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-@.+]{1,150}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
)

// FieldErrors maps field names to validation messages. It is returned by
// Register so handlers can surface per-field problems as a 400 payload.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// RegisterInput holds the registration payload after JSON binding.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// Service handles credential verification and account registration.
type Service struct {
	users  *users.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, cfg config.Auth) *Service {
	return &Service{
		users:  repo,
		config: cfg,
	}
}

// Register validates the input and creates a new account with a hashed
// password. Validation failures come back as FieldErrors.
func (s *Service) Register(input RegisterInput) (*entities.User, error) {
	fieldErrs := FieldErrors{}

	if input.Username == "" {
		fieldErrs["username"] = "this field is required"
	} else if !usernamePattern.MatchString(input.Username) {
		fieldErrs["username"] = "may contain only letters, digits and @/./+/-/_"
	}
	if input.Password == "" {
		fieldErrs["password"] = "this field is required"
	} else if len(input.Password) < MinPasswordLength {
		fieldErrs["password"] = "must be at least 8 characters"
	}
	if input.Email == "" {
		fieldErrs["email"] = "this field is required"
	} else if len(input.Email) > 254 || !emailPattern.MatchString(input.Email) {
		fieldErrs["email"] = "enter a valid email address"
	}

	if input.Username != "" {
		taken, err := s.users.UsernameTaken(input.Username, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if taken {
			fieldErrs["username"] = "a user with that username already exists"
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	passwordHash, err := HashPassword(input.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		IsActive:     true,
		DateJoined:   time.Now(),
	}

	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate validates credentials and returns the user.
// A deactivated account fails before the password comparison; an unknown
// username and a wrong password fail identically so the response leaks
// nothing about which usernames exist.
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetActiveUser loads a user by ID and rejects deactivated accounts. Used
// by the middleware after token verification so a valid token cannot outlive
// a deactivation.
func (s *Service) GetActiveUser(id uint) (*entities.User, error) {
	user, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	return user, nil
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (s *Service) ChangePassword(userID uint, oldPassword, newPassword string) error {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := CheckPassword(oldPassword, user.PasswordHash); err != nil {
		return err
	}

	newHash, err := HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		return err
	}

	_, err = s.users.Update(userID, map[string]any{"password_hash": newHash})
	return err
}

// HashNewPassword hashes a password for profile and admin updates, which
// replace the stored hash without an old-password check.
func (s *Service) HashNewPassword(password string) (string, error) {
	return HashPassword(password, s.config.BcryptCost)
}
