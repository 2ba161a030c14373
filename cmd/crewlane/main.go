package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/crewlane/crewlane/internal/cli"
	"github.com/crewlane/crewlane/internal/db"
	"github.com/crewlane/crewlane/internal/repository"
	"github.com/crewlane/crewlane/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.crewlane/crewlane.db
	dbPath := os.Getenv("CREWLANE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".crewlane", "crewlane.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	clientRepo := repository.NewSQLiteClientRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	subtaskRepo := repository.NewSQLiteSubtaskRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	// Unit of work for the transactional import path
	uow := db.NewSQLiteUnitOfWork(database)

	// View-build telemetry goes to stderr when debugging is on.
	var observers []service.ViewObserver
	if os.Getenv("CREWLANE_DEBUG") == "1" {
		observers = append(observers, service.NewLogViewObserver(os.Stderr))
	}

	app := &cli.App{
		Clients:  service.NewClientService(clientRepo),
		Projects: service.NewProjectService(projectRepo, clientRepo),
		Subtasks: service.NewSubtaskService(subtaskRepo, projectRepo),
		Users:    service.NewUserService(userRepo),
		Board:    service.NewBoardService(projectRepo, subtaskRepo, userRepo, observers...),
		Capacity: service.NewCapacityService(projectRepo, subtaskRepo, userRepo, observers...),
		Import:   service.NewImportService(uow),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
