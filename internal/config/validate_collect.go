package config

import "fmt"

// issueCollector accumulates issues in field order.
type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, format string, args ...any) {
	c.issues = append(c.issues, Issue{Field: field, Message: fmt.Sprintf(format, args...)})
}

// nonNegative records a missing or negative count.
func (c *issueCollector) nonNegative(field string, value *int) {
	switch {
	case value == nil:
		c.add(field, "is required")
	case *value < 0:
		c.add(field, "must be >= 0, got %d", *value)
	}
}

// result returns a *ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}
