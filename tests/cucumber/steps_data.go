package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"squadtrim/internal/report"
	"squadtrim/internal/squad"
)

// tableRecords maps a header row onto the remaining rows.
func tableRecords(table *godog.Table) ([]map[string]string, error) {
	if table == nil || len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header row and at least one record")
	}
	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = strings.TrimSpace(cell.Value)
	}
	records := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		record := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			if i < len(header) {
				record[header[i]] = strings.TrimSpace(cell.Value)
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// aDatasetFile writes a single-article dataset. Consecutive rows sharing a
// context become one paragraph.
func (s *featureState) aDatasetFile(name, version string, table *godog.Table) error {
	records, err := tableRecords(table)
	if err != nil {
		return err
	}
	article := squad.Article{Title: "Fixture"}
	for _, record := range records {
		context := record["context"]
		last := len(article.Paragraphs) - 1
		if last < 0 || article.Paragraphs[last].Context != context {
			article.Paragraphs = append(article.Paragraphs, squad.Paragraph{Context: context})
			last++
		}
		answer := squad.Answer{Text: record["answer"]}
		if start := strings.Index(context, answer.Text); start >= 0 {
			answer.AnswerStart = &start
		}
		article.Paragraphs[last].QAs = append(article.Paragraphs[last].QAs, squad.QA{
			ID:       record["id"],
			Question: record["question"],
			Answers:  []squad.Answer{answer},
		})
	}
	dataset := squad.Dataset{Version: version, Articles: []squad.Article{article}}
	return report.WriteJSON(filepath.Join(s.workDir, name), dataset)
}

// aPredictionsFile writes an id to answer mapping.
func (s *featureState) aPredictionsFile(name string, table *godog.Table) error {
	records, err := tableRecords(table)
	if err != nil {
		return err
	}
	predictions := squad.Predictions{}
	for _, record := range records {
		predictions[record["id"]] = record["prediction"]
	}
	return report.WriteJSON(filepath.Join(s.workDir, name), predictions)
}

// aFileContaining writes raw contents, creating parent directories.
func (s *featureState) aFileContaining(name string, contents *godog.DocString) error {
	path := filepath.Join(s.workDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(path, []byte(contents.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
