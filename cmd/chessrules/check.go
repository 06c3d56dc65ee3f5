package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// runCheck checks scenario files in parallel, prints one line per file
// and returns the exit status: 0 when every file is valid.
func runCheck(cfg *config.Config, paths []string, numWorkers int) int {
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "No scenario files given\n")
		return 2
	}

	reports, summary := processing.CheckFiles(paths, numWorkers)
	writeReports(cfg.OutputFile, reports)

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, summary)
	}
	if summary.Invalid > 0 || summary.Failed > 0 {
		return 1
	}
	return 0
}

func writeReports(w io.Writer, reports []processing.Report) {
	for _, r := range reports {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%s: error: %v\n", r.Path, r.Err)
		case !r.Validation.Valid:
			fmt.Fprintf(w, "%s: invalid: %s\n", r.Path, r.Validation.ErrorMsg)
		default:
			a := r.Analysis
			fmt.Fprintf(w, "%s: ok: %d moves, %s to move, %d replies, %s",
				r.Path, a.Plies, a.Turn, a.Mobility, a.Result)
			if r.Duplicate {
				fmt.Fprintf(w, " (duplicate position)")
			}
			fmt.Fprintln(w)
		}
	}
}

func reportStatistics(w io.Writer, s processing.Summary) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%d files: %d invalid, %d unreadable, %d unique positions, %d duplicates\n",
		s.Files, s.Invalid, s.Failed, s.Unique, s.Duplicates)
}
