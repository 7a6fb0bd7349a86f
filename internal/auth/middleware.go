package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/entities"
)

// Context key for the resolved user
const ContextKeyUser = "auth_user"

// Middleware resolves the acting user from a bearer access token.
type Middleware struct {
	service *Service
	tokens  *TokenManager
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, tokens *TokenManager) *Middleware {
	return &Middleware{
		service: service,
		tokens:  tokens,
	}
}

// Handler authenticates the request when a bearer token is presented and
// stores the resolved user in the context. Requests without credentials
// pass through anonymously; per-route guards decide whether that is
// acceptable. A present-but-invalid token fails immediately with 401 so
// expired credentials are never silently treated as anonymous.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		userID, err := m.tokens.VerifyAccess(tokenString)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		user, err := m.service.GetActiveUser(userID)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			abortUnauthorized(c, "authentication required")
			return
		}
		c.Next()
	}
}

// RequireSuperuser gates the admin surface. The role check runs before any
// handler logic; authenticated non-superusers get 403.
func (m *Middleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthorized(c, "authentication required")
			return
		}
		if !user.IsSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "superuser access required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the gin context, or nil
// for anonymous requests.
func CurrentUser(c *gin.Context) *entities.User {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*entities.User); ok {
			return user
		}
	}
	return nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
