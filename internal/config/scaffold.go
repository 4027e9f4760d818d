package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned when scaffolding would overwrite a config file.
var ErrExists = errors.New("config file already exists")

const defaultConfig = `version: 1

dataset:
  # Datasets with another version are processed with a warning.
  expected_version: "1.1"

compress:
  # Number of words each question is reduced to.
  question_length: 3
  keep_apostrophes: false
  keep_hyphens: false
  keep_slashes: false

sample:
  # Ids drawn from each of the both-correct and newly-incorrect sets.
  size: 10
  seed: 0

output:
  # Also write <report>.html next to the JSON report.
  html_report: false
`

// WriteScaffold writes the default config to path unless a file exists there.
func WriteScaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
