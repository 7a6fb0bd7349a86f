package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/covers"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/marks"
	"github.com/mrlokans/booklist/internal/database/users"
	http_controllers "github.com/mrlokans/booklist/internal/http"
)

// Serve runs the HTTP server until an interrupt, then shuts down gracefully
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires up the database, repositories, authentication and router, then
// serves HTTP.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Booklist v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)
	markRepo := marks.NewRepository(db.DB)

	// Tokens signed with an ephemeral secret do not survive a restart.
	if cfg.Auth.JWTSecret == "" {
		secret, err := auth.GenerateSigningSecret()
		if err != nil {
			log.Fatalf("Failed to generate signing secret: %v", err)
		}
		cfg.Auth.JWTSecret = secret
		log.Printf("Generated signing secret (set JWT_SECRET to persist sessions across restarts)")
	}

	tokenManager, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize token manager: %v", err)
	}

	authService := auth.NewService(userRepo, cfg.Auth)
	authMiddleware := auth.NewMiddleware(authService, tokenManager)

	coverStore, err := covers.NewStore(cfg.Media.Path)
	if err != nil {
		log.Fatalf("Failed to initialize cover store: %v", err)
	}
	log.Printf("Cover store initialized at %s", cfg.Media.Path)

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Users:          userRepo,
		Books:          bookRepo,
		Marks:          markRepo,
		AuthService:    authService,
		TokenManager:   tokenManager,
		AuthMiddleware: authMiddleware,
		CoverStore:     coverStore,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
