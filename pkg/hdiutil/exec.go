// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner runs an external command to completion
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// ExecRunner implements Runner using os/exec
type ExecRunner struct {
	// Stdin is handed to the child (default: os.Stdin)
	Stdin io.Reader
}

// Run starts name with args and waits for it to exit. Output is not captured:
// when stdout and stderr are *os.File the child writes to them directly.
// The child inherits stdin so hdiutil can still talk to the operator.
func (r ExecRunner) Run(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- arguments are the documented hdiutil grammar
	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return &SpawnError{Tool: name, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolExecutionError{
				Tool:     name,
				ExitCode: exitErr.ExitCode(),
				State:    exitErr.ProcessState.String(),
			}
		}
		return err
	}
	return nil
}
