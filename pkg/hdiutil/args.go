// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

import (
	"strconv"
	"strings"
)

// Tool is the name of the disk image utility, resolved through PATH
const Tool = "hdiutil"

// PassphraseMask replaces the passphrase in rendered commands
const PassphraseMask = "******"

// CreateArgs builds the hdiutil argument vector for an encrypted image.
// The order matches the hdiutil create grammar and must not change.
//
// The passphrase is passed as a plain argument, so it is visible to other
// processes on the host for as long as hdiutil runs.
func CreateArgs(opts CreateOptions, passphrase string) []string {
	return []string{
		"create",
		"-size", opts.Size,
		"-fs", opts.Filesystem,
		"-type", opts.ImageType,
		"-encryption", opts.Encryption,
		"-volname", opts.VolumeName,
		"-passphrase", passphrase,
		opts.Output,
	}
}

// Redact returns the display form of a single argument
func Redact(arg, passphrase string) string {
	display := arg
	if arg == passphrase {
		display = PassphraseMask
	}
	if strings.ContainsAny(display, " \"'") {
		return strconv.Quote(display)
	}
	return display
}

// RenderCommand returns the log line for running tool with args,
// with the passphrase masked
func RenderCommand(tool string, args []string, passphrase string) string {
	rendered := make([]string, 0, len(args))
	for _, arg := range args {
		rendered = append(rendered, Redact(arg, passphrase))
	}
	return "Running: " + tool + " " + strings.Join(rendered, " ")
}
