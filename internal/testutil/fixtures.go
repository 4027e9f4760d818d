package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CapitalsDataset is a one-paragraph SQuAD 1.1 dataset with three questions.
const CapitalsDataset = `{
  "version": "1.1",
  "data": [{
    "title": "Capitals",
    "paragraphs": [{
      "context": "Berlin is the capital of Germany. Paris is the capital of France.",
      "qas": [
        {"id": "q1", "question": "What is the capital of Germany?", "answers": [{"answer_start": 0, "text": "Berlin"}]},
        {"id": "q2", "question": "What is the capital of France?", "answers": [{"answer_start": 34, "text": "Paris"}]},
        {"id": "q3", "question": "Which country has Berlin as its capital?", "answers": [{"answer_start": 25, "text": "Germany"}]}
      ]
    }]
  }]
}`

// WriteFile writes contents to dir/name and returns the path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
