// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jeremyhahn/go-dmgutil/pkg/hdiutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Terminal defines the interface for terminal operations
type Terminal interface {
	ReadPassword(fd int) ([]byte, error)
}

// CLI represents the command-line interface application
type CLI struct {
	Args       []string
	Stdout     io.Writer
	Stderr     io.Writer
	Terminal   Terminal
	Runner     hdiutil.Runner
	GOOS       string
	openTTY    func() (TTY, error)
}

// NewCLI creates a new CLI instance with default dependencies
func NewCLI() *CLI {
	return &CLI{
		Args:       os.Args,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Terminal:   &DefaultTerminal{},
		Runner:     hdiutil.ExecRunner{},
		GOOS:       runtime.GOOS,
		openTTY:    openControllingTTY,
	}
}

// Run executes the CLI and returns the process exit code. Any failure,
// including a non-zero hdiutil status, yields 1.
func (c *CLI) Run() int {
	if err := hdiutil.CheckPlatform(c.GOOS); err != nil {
		_, _ = fmt.Fprintln(c.Stderr, hdiutil.UnsupportedPlatformMessage)
		return 1
	}

	logger := log.New()
	logger.SetOutput(c.Stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(log.InfoLevel)

	var args []string
	if len(c.Args) > 1 {
		args = c.Args[1:]
	}

	cmd := c.newRootCommand(logger)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintf(c.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func (c *CLI) newRootCommand(logger *log.Logger) *cobra.Command {
	opts := hdiutil.DefaultCreateOptions()
	var debug bool

	cmd := &cobra.Command{
		Use:   "dmg-util",
		Short: "Create an encrypted APFS DMG image by wrapping macOS hdiutil.",
		Long: `dmg-util creates an encrypted disk image with hdiutil.

The passphrase is prompted for without echo, then passed to hdiutil on its
command line. While hdiutil runs, the passphrase is visible to other users
of this host through process listing tools such as ps. The command printed
before hdiutil starts has the passphrase masked.`,
		Example: `  dmg-util
  dmg-util -s 1g -n Secure -o secure.dmg
  dmg-util --filesystem "HFS+" --image-type SPARSE -o notes.sparseimage`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.create(cmd.Context(), opts, logger)
		},
	}
	cmd.SetOut(c.Stdout)
	cmd.SetErr(c.Stderr)
	cmd.SetVersionTemplate("dmg-util version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVarP(&opts.Size, "size", "s", opts.Size, "Size of the DMG (e.g. 100m, 1g)")
	flags.StringVarP(&opts.VolumeName, "volume-name", "n", opts.VolumeName, "Volume name inside the DMG")
	flags.StringVarP(&opts.Output, "output", "o", opts.Output, "Output DMG path")
	flags.StringVarP(&opts.Encryption, "encryption", "e", opts.Encryption, "Encryption algorithm to use with hdiutil")
	flags.StringVarP(&opts.Filesystem, "filesystem", "f", opts.Filesystem, "File system to format the DMG with")
	flags.StringVarP(&opts.ImageType, "image-type", "t", opts.ImageType, "Disk image type")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

// create prompts for the passphrase and runs hdiutil
func (c *CLI) create(ctx context.Context, opts hdiutil.CreateOptions, logger *log.Logger) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	passphrase, err := c.promptPassphrase("Enter passphrase: ")
	if err != nil {
		return err
	}
	defer hdiutil.ClearBytes(passphrase)

	launcher := hdiutil.NewLauncher(logger)
	launcher.Runner = c.Runner
	launcher.Stdout = c.Stdout
	launcher.Stderr = c.Stderr
	return launcher.Create(ctx, opts, passphrase)
}

// promptPassphrase prompts on the controlling terminal and reads the
// passphrase with echo disabled
func (c *CLI) promptPassphrase(prompt string) ([]byte, error) {
	tty, err := c.openTTY()
	if err != nil {
		return nil, &hdiutil.InputError{Err: fmt.Errorf("%w: %v", hdiutil.ErrNoTerminal, err)}
	}
	defer func() { _ = tty.Close() }()

	_, _ = fmt.Fprint(tty, prompt)
	passphrase, err := c.Terminal.ReadPassword(int(tty.Fd()))
	_, _ = fmt.Fprintln(tty)
	if err != nil {
		return nil, &hdiutil.InputError{Err: err}
	}
	return passphrase, nil
}
