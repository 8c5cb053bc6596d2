package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/worklane/worklane-cli/internal/client/api"
	"github.com/worklane/worklane-cli/internal/client/cli"
	"github.com/worklane/worklane-cli/internal/client/config"
	"github.com/worklane/worklane-cli/internal/client/iocli"
	"github.com/worklane/worklane-cli/internal/client/session"
	"github.com/worklane/worklane-cli/internal/client/storage/boltdb"
	"github.com/worklane/worklane-cli/pkg/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := pflag.Bool("version", false, "Show version information")
	serverURL := pflag.String("server", "", "API base URL (overrides WORKLANE_API_URL)")
	dbPath := pflag.String("db", "", "Path to local database (overrides WORKLANE_DB)")
	pflag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	stdio := iocli.NewStdio()

	args := pflag.Args()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		os.Exit(1)
	}

	ctx := context.Background()

	// A .env file is optional; the environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.APIBaseURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: true})

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	apiClient := api.NewClient(cfg.APIBaseURL, cfg.Timeout, boltStorage, log)

	// The session is the single source of truth the guards consult; it is
	// built here once and passed down explicitly.
	sess := session.New(apiClient, boltStorage, log)
	sess.Resolve(ctx)

	app := cli.New(sess, apiClient, boltStorage, stdio, log)
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Worklane Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
