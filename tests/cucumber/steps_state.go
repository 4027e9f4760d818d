package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	workDir    string
	previousWD string
	previousNC *string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a dataset file "([^"]+)" with version "([^"]+)":$`, state.aDatasetFile)
	ctx.Step(`^a predictions file "([^"]+)":$`, state.aPredictionsFile)
	ctx.Step(`^a file "([^"]+)" containing:$`, state.aFileContaining)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^stdout contains "([^"]*)"$`, state.stdoutContains)
	ctx.Step(`^stderr contains "([^"]*)"$`, state.stderrContains)
	ctx.Step(`^the file "([^"]+)" does not exist$`, state.theFileDoesNotExist)
	ctx.Step(`^the question "([^"]+)" in "([^"]+)" is "([^"]*)"$`, state.theQuestionIs)
	ctx.Step(`^the report "([^"]+)" has "([^"]+)" equal to ([0-9.]+)$`, state.theReportHasScore)
	ctx.Step(`^the report "([^"]+)" lists "([^"]+)" as newly incorrect$`, state.theReportListsNewlyIncorrect)
	ctx.Step(`^the report "([^"]+)" samples (\d+) both-correct questions?$`, state.theReportSamplesBothCorrect)
}

// reset creates a fresh working directory for the scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0

	dir, err := os.MkdirTemp("", "squadtrim-feature-")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd

	if current, ok := os.LookupEnv("NO_COLOR"); ok {
		s.previousNC = &current
	} else {
		s.previousNC = nil
	}
	return os.Setenv("NO_COLOR", "1")
}

// cleanup restores the working directory and removes scenario files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.previousNC != nil {
		_ = os.Setenv("NO_COLOR", *s.previousNC)
	} else {
		_ = os.Unsetenv("NO_COLOR")
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
	s.workDir = ""
	s.previousWD = ""
}
