// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

import "fmt"

// SupportedOS is the only GOOS that ships hdiutil
const SupportedOS = "darwin"

// UnsupportedPlatformMessage is printed when the host cannot run hdiutil
const UnsupportedPlatformMessage = "This tool only works on macOS because it shells out to hdiutil."

// CheckPlatform returns ErrUnsupportedPlatform unless goos is darwin
func CheckPlatform(goos string) error {
	if goos != SupportedOS {
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
	return nil
}
