package review

import (
	"errors"
	"fmt"
)

// ErrInsufficientPopulation is returned when a sample is larger than the set
// it is drawn from.
var ErrInsufficientPopulation = errors.New("insufficient population")

// ErrLookup is returned when a sampled id is missing from a dataset.
var ErrLookup = errors.New("question id not found")

// PopulationError reports which id set was too small for the sample.
type PopulationError struct {
	Set       string
	Requested int
	Available int
}

// Error returns a readable message for the failed draw.
func (err *PopulationError) Error() string {
	return fmt.Sprintf("cannot sample %d %s ids: only %d available", err.Requested, err.Set, err.Available)
}

// Unwrap exposes ErrInsufficientPopulation.
func (err *PopulationError) Unwrap() error {
	return ErrInsufficientPopulation
}

// LookupError reports an id that could not be found in a dataset.
type LookupError struct {
	ID      string
	Dataset string
}

// Error returns a readable message for the missing id.
func (err *LookupError) Error() string {
	return fmt.Sprintf("question %q not found in %s dataset", err.ID, err.Dataset)
}

// Unwrap exposes ErrLookup.
func (err *LookupError) Unwrap() error {
	return ErrLookup
}
