package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// The auth middleware runs globally in optional mode so public reads can
// still personalize responses for authenticated callers; RequireAuth and
// RequireSuperuser gate the protected route groups.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cfg.AuthMiddleware.Handler())

	health := NewHealthController(cfg.Database, cfg.Version)
	authController := NewAuthController(cfg.AuthService, cfg.TokenManager)
	booksController := NewBooksController(cfg.Books, cfg.Marks, cfg.CoverStore)
	marksController := NewMarksController(cfg.Books, cfg.Marks)
	profileController := NewProfileController(cfg.Users, cfg.AuthService)
	adminController := NewAdminController(cfg.Users, cfg.Books, cfg.AuthService)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	// Public auth endpoints
	api.POST("/login", authController.Login)
	api.POST("/register", authController.Register)
	api.POST("/token/refresh", authController.Refresh)

	// Public catalog reads
	api.GET("/books", booksController.List)
	api.GET("/books/:id", booksController.Get)
	api.GET("/books/:id/cover", booksController.GetCover)

	// Authenticated endpoints
	authed := api.Group("")
	authed.Use(cfg.AuthMiddleware.RequireAuth())
	{
		authed.POST("/change-password", authController.ChangePassword)
		authed.GET("/profile", profileController.Get)
		authed.PATCH("/profile", profileController.Update)

		authed.POST("/books", booksController.Create)
		authed.PATCH("/books/:id", booksController.Update)
		authed.DELETE("/books/:id", booksController.Delete)
		authed.POST("/books/:id/cover", booksController.UploadCover)

		authed.POST("/books/:id/mark", marksController.Set)
		authed.PATCH("/books/:id/mark", marksController.Update)
		authed.DELETE("/books/:id/mark", marksController.Delete)
	}

	// Superuser-only admin surface
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireSuperuser())
	{
		admin.GET("/users", adminController.ListUsers)
		admin.PATCH("/users/:id", adminController.UpdateUser)
		admin.DELETE("/users/:id", adminController.DeleteUser)

		admin.GET("/books", adminController.ListBooks)
		admin.POST("/books", adminController.CreateBook)
		admin.PATCH("/books/:id", adminController.UpdateBook)
		admin.DELETE("/books/:id", adminController.DeleteBook)
	}

	return router
}
