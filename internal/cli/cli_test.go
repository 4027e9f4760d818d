package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootHelp(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"--help"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	output := out.String()
	if !strings.Contains(output, "Usage:") {
		t.Fatalf("expected usage header, got %q", output)
	}
	for _, name := range []string{"compress", "evaluate", "score", "render", "validate", "init"} {
		if !strings.Contains(output, name) {
			t.Fatalf("expected command %q in output", name)
		}
	}
}

func TestNoArgsShowsUsage(t *testing.T) {
	var out, err bytes.Buffer
	code := Run(nil, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage output, got %q", out.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"nope"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Unknown command") {
		t.Fatalf("expected unknown command error, got %q", err.String())
	}
	if !strings.Contains(err.String(), "Usage:") {
		t.Fatalf("expected usage in stderr, got %q", err.String())
	}
}

func TestCommandHelp(t *testing.T) {
	usage := map[string]string{
		"compress": "compress <dataset> <output> [length]",
		"evaluate": "<sample-size> <output>",
		"score":    "score <dataset> <predictions>",
		"render":   "render <report.json> <output.html>",
		"validate": "validate",
		"init":     "init",
	}
	for name, line := range usage {
		var out, err bytes.Buffer
		code := Run([]string{name, "--help"}, &out, &err)
		if code != ExitOK {
			t.Fatalf("%s: expected exit %d, got %d", name, ExitOK, code)
		}
		if err.Len() != 0 {
			t.Fatalf("%s: expected no stderr output, got %q", name, err.String())
		}
		if !strings.Contains(out.String(), "Usage:") || !strings.Contains(out.String(), line) {
			t.Fatalf("%s: expected usage line %q, got %q", name, line, out.String())
		}
	}
}

func TestWrongArgumentCountIsUsageError(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"score", "only-one.json"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "accepts 2 arg(s)") {
		t.Fatalf("expected argument count error, got %q", err.String())
	}
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"score", "--bogus", "a.json", "b.json"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

func TestInvalidLogFormat(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"init", "--log-format", "xml", "--config", t.TempDir() + "/config.yml"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "invalid log format") {
		t.Fatalf("expected log format error, got %q", err.String())
	}
}
