package processing

import (
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/setup"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Report is the outcome of checking one scenario file.
type Report struct {
	Path       string
	Analysis   *Analysis
	Validation *ValidationResult
	// Duplicate is set when another file in the same run ends in the same
	// position. Which of the equal files is flagged depends on scheduling.
	Duplicate bool
	// Err is set when the file could not be read or parsed
	Err error
}

// Summary totals a batch check.
type Summary struct {
	Files      int
	Invalid    int
	Failed     int
	Unique     int
	Duplicates int
}

// CheckFiles loads, replays and analyzes scenario files using the given
// number of workers. Reports are returned in input order.
func CheckFiles(paths []string, workers int) ([]Report, Summary) {
	detector := hashing.NewThreadSafeDuplicateDetector(true, 0)

	process := func(item worker.WorkItem) worker.ProcessResult {
		res := worker.ProcessResult{Path: item.Path, Index: item.Index}

		s, err := setup.Load(item.Path)
		if err != nil {
			res.Error = err
			return res
		}
		analysis, validation := AnalyzeScenario(s)
		report := Report{Path: item.Path, Analysis: analysis, Validation: validation}
		if analysis != nil {
			res.Board = analysis.FinalBoard
			res.Turn = analysis.Turn
			res.Duplicate = detector.CheckAndAdd(analysis.FinalBoard, analysis.Turn)
		}
		res.Info = report
		return res
	}

	results := worker.Run(paths, process, worker.WithWorkers(workers), worker.WithBufferSize(len(paths)))

	reports := make([]Report, len(results))
	summary := Summary{Files: len(results)}
	for i, res := range results {
		if res.Error != nil {
			reports[i] = Report{Path: res.Path, Err: res.Error}
			summary.Failed++
			continue
		}
		report := res.Info.(Report)
		report.Duplicate = res.Duplicate
		if !report.Validation.Valid {
			summary.Invalid++
		}
		reports[i] = report
	}
	summary.Unique = detector.UniqueCount()
	summary.Duplicates = detector.DuplicateCount()
	return reports, summary
}
