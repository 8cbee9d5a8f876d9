// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

//go:build integration && !windows

package cli_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the CLI binary
	tmpDir, err := os.MkdirTemp("", "dmg-util-cli-test")
	if err != nil {
		panic("Failed to create temp dir: " + err.Error())
	}

	binaryPath = filepath.Join(tmpDir, "dmg-util")
	cmd := exec.Command("go", "build", "-o", binaryPath, "github.com/jeremyhahn/go-dmgutil/cmd/dmg-util")
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		panic("Failed to build CLI: " + err.Error() + "\nOutput: " + string(out))
	}

	code := m.Run()
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

func runCLIWithInput(input string, args ...string) (string, string, int) {
	return runCommand(exec.Command(binaryPath, args...), input)
}

// runDetached runs the CLI in a new session, so it has no controlling terminal
func runDetached(input string, args ...string) (string, string, int) {
	cmd := exec.Command(binaryPath, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return runCommand(cmd, input)
}

func runCommand(cmd *exec.Cmd, input string) (string, string, int) {
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		code = -1
	}
	return stdout.String(), stderr.String(), code
}

func requireDarwin(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "darwin" {
		t.Skip("requires macOS")
	}
}

func TestCLI_UnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("host is supported")
	}

	stdout, stderr, code := runCLIWithInput("hunter2\n", "-s", "1g", "-o", "out.dmg")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "This tool only works on macOS because it shells out to hdiutil.\n", stderr)
	assert.NotContains(t, stderr, "Enter passphrase")
}

func TestCLI_HelpFlags(t *testing.T) {
	requireDarwin(t)

	for _, arg := range []string{"--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			stdout, _, code := runCLIWithInput("", arg)

			require.Equal(t, 0, code)
			for _, flag := range []string{"--size", "--volume-name", "--output", "--encryption", "--filesystem", "--image-type"} {
				assert.Contains(t, stdout, flag)
			}
		})
	}
}

func TestCLI_Version(t *testing.T) {
	requireDarwin(t)

	stdout, _, code := runCLIWithInput("", "--version")

	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "dmg-util version "))
}

func TestCLI_NoControllingTerminal(t *testing.T) {
	requireDarwin(t)

	out := filepath.Join(t.TempDir(), "detached.dmg")
	stdout, stderr, code := runDetached("hunter2\n", "-o", out)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: failed to read passphrase: no terminal available")
	assert.NotContains(t, stderr, "hunter2")

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no image must be created")
}

func TestCLI_UnknownFlag(t *testing.T) {
	requireDarwin(t)

	_, stderr, code := runCLIWithInput("", "--bogus")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: unknown flag: --bogus")
}
