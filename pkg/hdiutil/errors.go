// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrUnsupportedPlatform is returned on hosts without hdiutil
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrInvalidOption is returned when a create option is missing
	ErrInvalidOption = errors.New("invalid option")

	// ErrNoTerminal is returned when no controlling terminal can be opened
	ErrNoTerminal = errors.New("no terminal available")
)

// InputError reports a failure to read the passphrase
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read passphrase: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// SpawnError reports that the tool could not be started
type SpawnError struct {
	Tool string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Tool, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ToolExecutionError reports that the tool ran but did not succeed.
// ExitCode is -1 when the process was terminated by a signal.
type ToolExecutionError struct {
	Tool     string
	ExitCode int
	State    string
}

func (e *ToolExecutionError) Error() string {
	if e.ExitCode < 0 {
		return fmt.Sprintf("%s terminated: %s", e.Tool, e.State)
	}
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
}
