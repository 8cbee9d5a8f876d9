// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Launcher runs hdiutil to create encrypted disk images
type Launcher struct {
	// Tool is the utility name, resolved through PATH
	Tool string

	// Runner executes the tool
	Runner Runner

	// Stdout receives the rendered command and the tool's output
	Stdout io.Writer

	// Stderr receives the tool's error output
	Stderr io.Writer

	// Logger receives warnings and debug output
	Logger *log.Logger
}

// NewLauncher returns a Launcher that runs hdiutil on the process
// standard streams and logs to logger
func NewLauncher(logger *log.Logger) *Launcher {
	return &Launcher{
		Tool:   Tool,
		Runner: ExecRunner{},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Create validates opts, prints the redacted command and runs the tool.
// The passphrase is not retained after Create returns.
func (l *Launcher) Create(ctx context.Context, opts CreateOptions, passphrase []byte) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	secret := string(passphrase)
	args := CreateArgs(opts, secret)

	if _, err := fmt.Fprintln(l.Stdout, RenderCommand(l.Tool, args, secret)); err != nil {
		return err
	}

	l.Logger.Warnf("passphrase is passed to %s as an argument and is visible to other processes while it runs", l.Tool)
	l.Logger.WithFields(log.Fields{
		"size":       opts.Size,
		"filesystem": opts.Filesystem,
		"type":       opts.ImageType,
		"encryption": opts.Encryption,
		"output":     opts.Output,
	}).Debug("creating encrypted disk image")

	if err := l.Runner.Run(ctx, l.Tool, args, l.Stdout, l.Stderr); err != nil {
		return err
	}

	l.Logger.Debugf("created %s", opts.Output)
	return nil
}
