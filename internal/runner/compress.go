package runner

import (
	"context"
	"fmt"

	"squadtrim/internal/question"
	"squadtrim/internal/report"
)

// CompressParams configures a compression run.
type CompressParams struct {
	DatasetPath     string
	OutputPath      string
	QuestionLength  int
	Tokenizer       question.TokenizerOptions
	ExpectedVersion string
	Deps            Dependencies
}

// CompressResult describes a finished compression run.
type CompressResult struct {
	RunID      string
	OutputPath string
	// QuestionLength is the length the compressor actually applied.
	QuestionLength int
	Stats          question.Stats
}

// Compress rewrites every question of a dataset to its most informative
// words and writes the new dataset.
func Compress(ctx context.Context, params CompressParams) (CompressResult, error) {
	if params.DatasetPath == "" || params.OutputPath == "" {
		return CompressResult{}, fmt.Errorf("dataset and output paths are required")
	}
	if params.QuestionLength < 0 {
		return CompressResult{}, fmt.Errorf("question length must be >= 0, got %d", params.QuestionLength)
	}
	runID, err := ensureRunID(params.Deps.RunID)
	if err != nil {
		return CompressResult{}, err
	}
	logger := params.Deps.logger().With("run_id", runID, "command", "compress")
	started := params.Deps.now()

	dataset, err := loadDataset(logger, params.DatasetPath, params.ExpectedVersion)
	if err != nil {
		return CompressResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return CompressResult{}, err
	}

	compressor := question.NewCompressor(question.NewTokenizer(params.Tokenizer), params.QuestionLength)
	compressed, stats := compressor.CompressDataset(dataset)
	logger.Debug("questions compressed",
		"questions", stats.Questions,
		"paragraphs", stats.Paragraphs,
		"corpus_tokens", stats.CorpusTokens,
		"corpus_vocabulary", stats.CorpusDistinct,
	)
	if err := ctx.Err(); err != nil {
		return CompressResult{}, err
	}

	if err := report.WriteJSON(params.OutputPath, compressed); err != nil {
		return CompressResult{}, err
	}
	logger.Info("compressed dataset written",
		"output", params.OutputPath,
		"question_length", compressor.Length(),
		"elapsed", params.Deps.now().Sub(started),
	)
	return CompressResult{
		RunID:          runID,
		OutputPath:     params.OutputPath,
		QuestionLength: compressor.Length(),
		Stats:          stats,
	}, nil
}
