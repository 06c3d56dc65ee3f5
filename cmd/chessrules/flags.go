// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")

	// Display options
	noColour    = flag.Bool("nocolor", false, "Don't colour the board")
	asciiPieces = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	noCoords    = flag.Bool("nocoords", false, "Don't print file and rank labels")

	// Starting position
	setupFile   = flag.String("setup", "", "Scenario file (YAML) for the starting position")
	placement   = flag.String("placement", "", "FEN piece placement for the starting position")
	firstToMove = flag.String("tomove", "", "Side to move first: white or black")

	// Saved positions
	dbPath = flag.String("db", "", "SQLite database for save/load (empty disables)")

	// Batch checking
	checkMode = flag.Bool("check", false, "Check the scenario files given as arguments and exit")
	workers   = flag.Int("workers", 4, "Number of workers for -check")

	// Diagnostics
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Running commentary on stderr or the log file")
	quiet   = flag.Bool("q", false, "Silent mode (no diagnostics)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies explicitly set flags over cfg, so values from a
// configuration file survive unless overridden on the command line.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyDisplayFlags(cfg, set)
	applyGameFlags(cfg, set)

	if set["db"] {
		cfg.Store.Path = *dbPath
	}
	if set["l"] {
		cfg.LogPath = *logFile
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

func applyDisplayFlags(cfg *config.Config, set map[string]bool) {
	if set["nocolor"] {
		cfg.Display.Colour = !*noColour
	}
	if set["ascii"] {
		cfg.Display.Unicode = !*asciiPieces
	}
	if set["nocoords"] {
		cfg.Display.Coordinates = !*noCoords
	}
}

func applyGameFlags(cfg *config.Config, set map[string]bool) {
	if set["setup"] {
		cfg.Game.Setup = *setupFile
	}
	if set["placement"] {
		cfg.Game.Placement = *placement
	}
	if set["tomove"] {
		cfg.Game.FirstToMove = *firstToMove
	}
}

// setFlags returns the names of the flags given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
