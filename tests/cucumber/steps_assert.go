package cucumber

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"squadtrim/internal/report"
	"squadtrim/internal/squad"
)

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts that the CLI returned an error code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

// theOutputListsCommands asserts the output contains expected command names.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}

func (s *featureState) stdoutContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected stdout to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) stderrContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theFileDoesNotExist(name string) error {
	if _, err := os.Stat(filepath.Join(s.workDir, name)); !os.IsNotExist(err) {
		return fmt.Errorf("expected %s to be absent (stat err %v)", name, err)
	}
	return nil
}

// theQuestionIs checks a rewritten question in a dataset file.
func (s *featureState) theQuestionIs(id, name, want string) error {
	dataset, err := squad.LoadDataset(filepath.Join(s.workDir, name))
	if err != nil {
		return err
	}
	_, qa, ok := squad.NewIndex(dataset).Lookup(id)
	if !ok {
		return fmt.Errorf("question %q not found in %s", id, name)
	}
	if qa.Question != want {
		return fmt.Errorf("expected question %q, got %q", want, qa.Question)
	}
	return nil
}

// theReportHasScore compares a numeric top-level report field.
func (s *featureState) theReportHasScore(name, field, value string) error {
	data, err := os.ReadFile(filepath.Join(s.workDir, name))
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}
	raw, ok := fields[field]
	if !ok {
		return fmt.Errorf("report has no %q field", field)
	}
	var got float64
	if err := json.Unmarshal(raw, &got); err != nil {
		return fmt.Errorf("field %q is not a number: %w", field, err)
	}
	want, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	if math.Abs(got-want) > 1e-6 {
		return fmt.Errorf("expected %s = %v, got %v", field, want, got)
	}
	return nil
}

func (s *featureState) theReportListsNewlyIncorrect(name, id string) error {
	rep, err := report.LoadReview(filepath.Join(s.workDir, name))
	if err != nil {
		return err
	}
	if _, ok := rep.NewIncorrectContexts[id]; !ok {
		return fmt.Errorf("expected %q in new_incorrect_contexts, got %v", id, rep.NewIncorrectContexts)
	}
	return nil
}

func (s *featureState) theReportSamplesBothCorrect(name string, count int) error {
	rep, err := report.LoadReview(filepath.Join(s.workDir, name))
	if err != nil {
		return err
	}
	if len(rep.BothCorrectContexts) != count {
		return fmt.Errorf("expected %d both-correct samples, got %d", count, len(rep.BothCorrectContexts))
	}
	return nil
}
