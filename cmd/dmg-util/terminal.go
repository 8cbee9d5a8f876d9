// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"golang.org/x/term"
)

// TTY is the controlling terminal the passphrase prompt talks to
type TTY interface {
	Write(p []byte) (int, error)
	Fd() uintptr
	Close() error
}

// DefaultTerminal implements Terminal using the actual term package
type DefaultTerminal struct{}

func (d *DefaultTerminal) ReadPassword(fd int) ([]byte, error) {
	return term.ReadPassword(fd)
}

// openControllingTTY opens /dev/tty, which stays available when
// stdin or stdout are redirected
func openControllingTTY() (TTY, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return f, nil
}
