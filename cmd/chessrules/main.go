// chessrules is a two-player chess game in the terminal, built on a
// move-validation engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := loadConfig()
	applyFlags(cfg, setFlags(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	setupLogFile(cfg)

	if *checkMode {
		os.Exit(runCheck(cfg, flag.Args(), *workers))
	}
	os.Exit(play(cfg))
}

// play runs the interactive session and returns the exit status.
func play(cfg *config.Config) int {
	ctx := context.Background()
	session := NewSession(ctx, cfg, os.Stdin)

	if cfg.Store.Enabled() {
		db, err := store.Open(ctx, cfg.Store.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database %s: %v\n", cfg.Store.Path, err)
			return 1
		}
		defer db.Close()
		session.SetStore(db)
		cfg.Logf(2, "using position database %s", cfg.Store.Path)
	}

	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the -config file, or returns the defaults.
func loadConfig() *config.Config {
	if *configFile == "" {
		return config.NewConfig()
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", *configFile, err)
		os.Exit(1)
	}
	return cfg
}

// setupLogFile points diagnostics at the configured log file.
func setupLogFile(cfg *config.Config) {
	if cfg.LogPath == "" {
		return
	}
	file, err := os.Create(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogPath, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n")
	fmt.Fprintf(os.Stderr, "       chessrules -check [options] scenario.yaml...\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game with move validation.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nDuring a game, with -db set:\n")
	fmt.Fprintf(os.Stderr, "  save NAME    save the position\n")
	fmt.Fprintf(os.Stderr, "  load NAME    continue from a saved position\n")
	fmt.Fprintf(os.Stderr, "  delete NAME  remove a saved position\n")
	fmt.Fprintf(os.Stderr, "  list         list saved positions\n")
}
