package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alfcoach/alfcoach/internal/cli"
	"github.com/alfcoach/alfcoach/internal/coach"
	"github.com/alfcoach/alfcoach/internal/db"
	"github.com/alfcoach/alfcoach/internal/llm"
	"github.com/alfcoach/alfcoach/internal/repository"
	"github.com/alfcoach/alfcoach/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.alfcoach/alf.db
	dbPath := os.Getenv("ALF_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".alfcoach", "alf.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	assignmentRepo := repository.NewSQLiteAssignmentRepo(database)
	messageRepo := repository.NewSQLiteMessageRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the coach only when a model is configured; the rest of the
	// CLI works without one.
	var c *coach.Coach
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client, err := llm.NewClient(llmCfg, observer)
		if err != nil {
			return fmt.Errorf("configuring model client: %w", err)
		}
		c = coach.NewCoach(client)
	}

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, assignmentRepo, messageRepo),
		Sessions: service.NewSessionService(projectRepo, messageRepo, assignmentRepo, uow, c),
	}

	// Detect interactive terminal for the wizard and chat entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
