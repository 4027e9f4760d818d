package runner

import (
	"io"
	"log/slog"
	"time"

	"squadtrim/internal/squad"
)

// Dependencies are the collaborators a run can swap out in tests.
type Dependencies struct {
	RunID  func() (string, error)
	Now    func() time.Time
	Logger *slog.Logger
}

// ensureRunID uses the provided generator or falls back to NewRunID.
func ensureRunID(generator func() (string, error)) (string, error) {
	if generator != nil {
		return generator()
	}
	return NewRunID()
}

func (d Dependencies) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// loadDataset reads a dataset and logs a version mismatch without failing.
func loadDataset(logger *slog.Logger, path, expectedVersion string) (squad.Dataset, error) {
	dataset, err := squad.LoadDataset(path)
	if err != nil {
		return squad.Dataset{}, err
	}
	if expectedVersion == "" {
		expectedVersion = squad.ExpectedVersion
	}
	if warning := dataset.CheckVersion(expectedVersion); warning != nil {
		logger.Warn("dataset version mismatch",
			"dataset", path,
			"expected", expectedVersion,
			"got", dataset.Version,
		)
	}
	return dataset, nil
}

// logMissing reports unanswered questions; they score 0 but never fail a run.
func logMissing(logger *slog.Logger, run string, ids []string) {
	for _, id := range ids {
		logger.Warn("unanswered question will receive score 0", "run", run, "id", id)
	}
}
