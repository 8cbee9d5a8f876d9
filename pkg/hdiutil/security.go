// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

// ClearBytes zeroes a byte slice holding secret material
func ClearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
