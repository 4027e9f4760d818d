package squad

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadDataset reads a dataset file, validates it against the dataset schema
// and decodes it.
func LoadDataset(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	return ParseDataset(path, data)
}

// ParseDataset validates and decodes dataset bytes. The path is only used in
// error messages.
func ParseDataset(path string, data []byte) (Dataset, error) {
	datasetSchema, _, err := compiledSchemas()
	if err != nil {
		return Dataset{}, err
	}
	if err := validateDocument(path, data, datasetSchema.Validate); err != nil {
		return Dataset{}, err
	}
	var dataset Dataset
	if err := decodeJSON(data, &dataset); err != nil {
		return Dataset{}, &MalformedError{Path: path, Reason: err.Error()}
	}
	if err := checkUniqueIDs(path, dataset); err != nil {
		return Dataset{}, err
	}
	return dataset, nil
}

// LoadPredictions reads a prediction file mapping question ids to answers.
func LoadPredictions(path string) (Predictions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read predictions: %w", err)
	}
	return ParsePredictions(path, data)
}

// ParsePredictions validates and decodes prediction bytes.
func ParsePredictions(path string, data []byte) (Predictions, error) {
	_, predictionsSchema, err := compiledSchemas()
	if err != nil {
		return nil, err
	}
	if err := validateDocument(path, data, predictionsSchema.Validate); err != nil {
		return nil, err
	}
	predictions := Predictions{}
	if err := decodeJSON(data, &predictions); err != nil {
		return nil, &MalformedError{Path: path, Reason: err.Error()}
	}
	return predictions, nil
}

// CheckVersion returns a *VersionWarning when the dataset version differs
// from expected.
func (d Dataset) CheckVersion(expected string) error {
	if d.Version == expected {
		return nil
	}
	return &VersionWarning{Expected: expected, Got: d.Version}
}

func validateDocument(path string, data []byte, validate func(any) error) error {
	var document any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&document); err != nil {
		return &MalformedError{Path: path, Reason: fmt.Sprintf("parse json: %v", err)}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return &MalformedError{Path: path, Reason: "parse json: multiple documents are not supported"}
	}
	if err := validate(document); err != nil {
		return &MalformedError{Path: path, Reason: err.Error()}
	}
	return nil
}

func decodeJSON(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}

func checkUniqueIDs(path string, dataset Dataset) error {
	seen := make(map[string]struct{}, dataset.QuestionCount())
	for _, article := range dataset.Articles {
		for _, paragraph := range article.Paragraphs {
			for _, qa := range paragraph.QAs {
				if _, exists := seen[qa.ID]; exists {
					return &MalformedError{Path: path, Reason: fmt.Sprintf("duplicate question id %q", qa.ID)}
				}
				seen[qa.ID] = struct{}{}
			}
		}
	}
	return nil
}
