package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adelaplace/maitre/internal/cli"
	"github.com/adelaplace/maitre/internal/db"
	"github.com/adelaplace/maitre/internal/intelligence"
	"github.com/adelaplace/maitre/internal/llm"
	"github.com/adelaplace/maitre/internal/repository"
	"github.com/adelaplace/maitre/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Erreur : %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.maitre/catalog.db
	dbPath := os.Getenv("MAITRE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".maitre", "catalog.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	if err := repository.Seed(context.Background(), database); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	catalogRepo := repository.NewSQLiteCatalogRepo(database)

	// The LLM path is opt-in; without it the deterministic lexical
	// ranker serves recommendations.
	var client llm.Client
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client = llm.NewOpenAIClient(llmCfg, observer)
	}

	analyzer := intelligence.NewAnalyzeService(client)

	app := &cli.App{
		Catalog: catalogRepo,
		Intake:  service.NewIntake(catalogRepo, analyzer),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
