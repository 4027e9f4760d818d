package report

import "fmt"

// FormatScore renders a percentage with two decimals.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// FormatDelta returns a signed score difference.
func FormatDelta(before, after float64) string {
	return fmt.Sprintf("%+.2f", after-before)
}
