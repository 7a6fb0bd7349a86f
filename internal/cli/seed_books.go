package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/booklist/internal/config"
	"github.com/mrlokans/booklist/internal/database"
	"github.com/mrlokans/booklist/internal/database/books"
	"github.com/mrlokans/booklist/internal/database/users"
	"github.com/mrlokans/booklist/internal/seed"
)

// SeedBooksCommand replaces the catalog with the embedded book list.
type SeedBooksCommand struct {
	DatabasePath string
}

func NewSeedBooksCommand() *SeedBooksCommand {
	return &SeedBooksCommand{}
}

func (cmd *SeedBooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-books", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the database with a default superuser and a catalog of real books.\n")
		fmt.Fprintf(os.Stderr, "Existing books are cleared first; user accounts are left untouched.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedBooksCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	cfg := config.NewConfig()
	seeder := seed.NewSeeder(
		users.NewRepository(db.DB),
		books.NewRepository(db.DB),
		cfg.Auth,
	)

	if err := seeder.Run(); err != nil {
		return err
	}

	fmt.Printf("Seeded %d books into %s\n", len(seed.Catalog), cmd.DatabasePath)
	return nil
}
