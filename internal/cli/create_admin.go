package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booklist/internal/auth"
	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/users"
)

// CreateAdminCommand creates a superuser account from the command line.
type CreateAdminCommand struct {
	DatabasePath string
	Username     string
	Email        string
	Password     string
}

func NewCreateAdminCommand() *CreateAdminCommand {
	return &CreateAdminCommand{}
}

func (cmd *CreateAdminCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-admin", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Username, "username", "", "Username for the new superuser (required)")
	fs.StringVar(&cmd.Email, "email", "", "Email for the new superuser (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password for the new superuser (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-admin [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a superuser account with access to the admin API.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" || cmd.Email == "" || cmd.Password == "" {
		fs.Usage()
		return fmt.Errorf("username, email and password are all required")
	}

	return nil
}

func (cmd *CreateAdminCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	repo := users.NewRepository(db.DB)
	service := auth.NewService(repo, cfg.Auth)

	user, err := service.Register(auth.RegisterInput{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: cmd.Password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if _, err := repo.Update(user.ID, map[string]any{
		"is_staff":     true,
		"is_superuser": true,
	}); err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}

	fmt.Printf("Created superuser %q\n", user.Username)
	return nil
}
