package config

import (
	"fmt"
	"strings"
)

// Issue is one problem with a config field, addressed by its YAML path.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// ValidationError lists every issue found in one config file. Path is empty
// when the config did not come from disk.
type ValidationError struct {
	Path   string
	Issues []Issue
}

// Error names the file, then lists one issue per line.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	var b strings.Builder
	if err.Path != "" {
		fmt.Fprintf(&b, "%s: ", err.Path)
	}
	fmt.Fprintf(&b, "%d config issue(s)", len(err.Issues))
	for _, issue := range err.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.String())
	}
	return b.String()
}
