package report

import (
	"encoding/json"
	"fmt"
	"os"

	"squadtrim/internal/review"
)

// LoadReview reads a review report written by the evaluate command.
func LoadReview(path string) (review.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return review.Report{}, fmt.Errorf("read report: %w", err)
	}
	var rep review.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return review.Report{}, fmt.Errorf("parse report %s: %w", path, err)
	}
	return rep, nil
}
