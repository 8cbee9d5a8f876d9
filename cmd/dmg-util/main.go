// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
)

// Version information
const Version = "1.0.0"

func main() {
	os.Exit(NewCLI().Run())
}
