package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"squadtrim/internal/eval"
	"squadtrim/internal/report"
	"squadtrim/internal/review"
	"squadtrim/internal/squad"
)

// CommandEvaluate is recorded in the cmd field of review reports when no
// command line is given.
const CommandEvaluate = "evaluate"

// EvaluateParams configures an evaluate-and-sample run.
type EvaluateParams struct {
	OriginalDatasetPath       string
	CompressedDatasetPath     string
	OriginalPredictionsPath   string
	CompressedPredictionsPath string
	SampleSize                int
	Seed                      uint64
	OutputPath                string
	// HTMLPath is optional; when set an HTML rendering of the report is
	// written alongside the JSON.
	HTMLPath        string
	ExpectedVersion string
	// CommandLine is the invocation recorded in the report.
	CommandLine string
	Deps        Dependencies
}

// EvaluateResult describes a finished evaluate run.
type EvaluateResult struct {
	RunID      string
	Original   eval.Result
	Compressed eval.Result
	Report     review.Report
}

// Evaluate scores both prediction sets, samples questions that stayed
// correct and questions lost by compression, and writes the review report.
func Evaluate(ctx context.Context, params EvaluateParams) (EvaluateResult, error) {
	if params.SampleSize < 0 {
		return EvaluateResult{}, fmt.Errorf("sample size must be >= 0, got %d", params.SampleSize)
	}
	if params.OutputPath == "" {
		return EvaluateResult{}, fmt.Errorf("output path is required")
	}
	if params.HTMLPath != "" && filepath.Clean(params.HTMLPath) == filepath.Clean(params.OutputPath) {
		return EvaluateResult{}, fmt.Errorf("html report path %q is the same as the output report", params.HTMLPath)
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return EvaluateResult{}, err
	}
	logger := params.Deps.logger().With("run_id", runID, "command", CommandEvaluate)
	started := params.Deps.now()

	original, err := loadDataset(logger, params.OriginalDatasetPath, params.ExpectedVersion)
	if err != nil {
		return EvaluateResult{}, err
	}
	compressed, err := loadDataset(logger, params.CompressedDatasetPath, params.ExpectedVersion)
	if err != nil {
		return EvaluateResult{}, err
	}
	originalPredictions, err := squad.LoadPredictions(params.OriginalPredictionsPath)
	if err != nil {
		return EvaluateResult{}, err
	}
	compressedPredictions, err := squad.LoadPredictions(params.CompressedPredictionsPath)
	if err != nil {
		return EvaluateResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return EvaluateResult{}, err
	}

	// Both runs are scored against the original dataset: compression only
	// rewrites questions, so ids and gold answers are shared.
	originalResult := eval.Evaluate(original, originalPredictions)
	logMissing(logger, "original", originalResult.Missing)
	compressedResult := eval.Evaluate(original, compressedPredictions)
	logMissing(logger, "compressed", compressedResult.Missing)
	logger.Debug("predictions scored",
		"questions", originalResult.Total,
		"original_exact_match", originalResult.ExactMatch,
		"compressed_exact_match", compressedResult.ExactMatch,
	)
	if err := ctx.Err(); err != nil {
		return EvaluateResult{}, err
	}

	sample, err := review.Draw(originalResult.ExactMatchIDs, compressedResult.ExactMatchIDs, params.SampleSize, review.NewRand(params.Seed))
	if err != nil {
		return EvaluateResult{}, err
	}
	sources := review.NewSources(original, compressed, originalPredictions, compressedPredictions)
	newIncorrect, bothCorrect, err := review.Contexts(sample, sources)
	if err != nil {
		return EvaluateResult{}, err
	}

	commandLine := params.CommandLine
	if commandLine == "" {
		commandLine = CommandEvaluate
	}
	rep := review.Report{
		Cmd:                  commandLine,
		RunID:                runID,
		SampleSize:           params.SampleSize,
		SampleSeed:           params.Seed,
		QuestionsTotal:       originalResult.Total,
		OriginalExactMatch:   originalResult.ExactMatch,
		OriginalF1:           originalResult.F1,
		NewExactMatch:        compressedResult.ExactMatch,
		NewF1:                compressedResult.F1,
		BothCorrectTotal:     len(sample.BothCorrect),
		NewIncorrectTotal:    len(sample.NewlyIncorrect),
		NewIncorrectContexts: newIncorrect,
		BothCorrectContexts:  bothCorrect,
	}
	if err := writeReview(ctx, params, rep); err != nil {
		return EvaluateResult{}, err
	}
	logger.Info("review report written",
		"output", params.OutputPath,
		"both_correct", rep.BothCorrectTotal,
		"newly_incorrect", rep.NewIncorrectTotal,
		"elapsed", params.Deps.now().Sub(started),
	)
	return EvaluateResult{
		RunID:      runID,
		Original:   originalResult,
		Compressed: compressedResult,
		Report:     rep,
	}, nil
}

// writeReview renders everything before touching disk so that a failure
// leaves no output behind.
func writeReview(ctx context.Context, params EvaluateParams, rep review.Report) error {
	payload, err := report.EncodeJSON(rep)
	if err != nil {
		return err
	}
	var page string
	if params.HTMLPath != "" {
		page, err = report.RenderHTML(ctx, rep)
		if err != nil {
			return fmt.Errorf("render html report: %w", err)
		}
	}
	if err := report.WriteFileAtomic(params.OutputPath, payload); err != nil {
		return err
	}
	if params.HTMLPath == "" {
		return nil
	}
	if err := report.WriteFileAtomic(params.HTMLPath, []byte(page)); err != nil {
		_ = os.Remove(params.OutputPath)
		return err
	}
	return nil
}
