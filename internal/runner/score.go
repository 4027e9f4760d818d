package runner

import (
	"context"

	"squadtrim/internal/eval"
	"squadtrim/internal/squad"
)

// ScoreParams configures a plain scoring run.
type ScoreParams struct {
	DatasetPath     string
	PredictionsPath string
	ExpectedVersion string
	Deps            Dependencies
}

// Score evaluates one prediction file against a dataset.
func Score(ctx context.Context, params ScoreParams) (eval.Result, error) {
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return eval.Result{}, err
	}
	logger := params.Deps.logger().With("run_id", runID, "command", "score")
	dataset, err := loadDataset(logger, params.DatasetPath, params.ExpectedVersion)
	if err != nil {
		return eval.Result{}, err
	}
	predictions, err := squad.LoadPredictions(params.PredictionsPath)
	if err != nil {
		return eval.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return eval.Result{}, err
	}
	result := eval.Evaluate(dataset, predictions)
	logMissing(logger, "predictions", result.Missing)
	return result, nil
}
