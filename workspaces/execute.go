package workspaces

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// TestResult is the outcome of one pytest run. A non-zero ExitCode means
// the tests ran and failed, not that the run itself broke.
type TestResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func (r TestResult) Passed() bool {
	return r.ExitCode == 0
}

// ExecuteTests writes all pending files and runs pytest against the tests
// directory, with the workspace as working directory. Failing to spawn
// pytest is an error; a failing test run is a result.
func (p *Package) ExecuteTests(ctx context.Context) (*TestResult, error) {

	if err := p.WriteFiles(); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, "pytest", "tests")
	cmd.Dir = p.WorkspaceDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.Logger().InfoContext(ctx, "executing python tests",
		"command", "pytest tests",
		"dir", p.WorkspaceDir,
	)

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run pytest: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}

	p.Logger().InfoContext(ctx, "python tests executed",
		"exit_code", exitCode,
		"stdout", stdout.String(),
	)

	return &TestResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
