package review

import (
	"fmt"
	"math/rand/v2"
)

// Set names used in population errors and reports.
const (
	SetBothCorrect    = "both-correct"
	SetNewlyIncorrect = "newly-incorrect"
)

// Diff splits the originally correct ids by what happened after compression.
// Both slices keep the order of the original ids.
type Diff struct {
	BothCorrect    []string
	NewlyIncorrect []string
}

// Sample holds the ids drawn from each side of a Diff.
type Sample struct {
	Diff
	SampledBothCorrect    []string
	SampledNewlyIncorrect []string
}

// NewRand returns the seeded random source used for sampling.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Compare computes the intersection of original and updated, and the ids in
// original that are missing from updated.
func Compare(original, updated []string) Diff {
	inUpdated := make(map[string]struct{}, len(updated))
	for _, id := range updated {
		inUpdated[id] = struct{}{}
	}
	diff := Diff{BothCorrect: []string{}, NewlyIncorrect: []string{}}
	seen := make(map[string]struct{}, len(original))
	for _, id := range original {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := inUpdated[id]; ok {
			diff.BothCorrect = append(diff.BothCorrect, id)
		} else {
			diff.NewlyIncorrect = append(diff.NewlyIncorrect, id)
		}
	}
	return diff
}

// Draw samples k ids from each side of the diff, independently and without
// replacement. It fails rather than truncating when either side has fewer
// than k ids.
func Draw(original, updated []string, k int, rng *rand.Rand) (Sample, error) {
	if k < 0 {
		return Sample{}, fmt.Errorf("sample size must be non-negative, got %d", k)
	}
	diff := Compare(original, updated)
	both, err := choose(diff.BothCorrect, k, rng, SetBothCorrect)
	if err != nil {
		return Sample{}, err
	}
	lost, err := choose(diff.NewlyIncorrect, k, rng, SetNewlyIncorrect)
	if err != nil {
		return Sample{}, err
	}
	return Sample{Diff: diff, SampledBothCorrect: both, SampledNewlyIncorrect: lost}, nil
}

// choose runs a partial Fisher-Yates shuffle over a copy of population.
func choose(population []string, k int, rng *rand.Rand, set string) ([]string, error) {
	if k > len(population) {
		return nil, &PopulationError{Set: set, Requested: k, Available: len(population)}
	}
	if k == 0 {
		return []string{}, nil
	}
	pool := append([]string(nil), population...)
	for i := range k {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k], nil
}
