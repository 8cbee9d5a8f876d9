// Copyright (c) 2025 Jeremy Hahn
//
// SPDX-License-Identifier: Apache-2.0

package hdiutil

import "fmt"

// Default values for CreateOptions
const (
	DefaultSize       = "100m"
	DefaultVolumeName = "MyVolume"
	DefaultOutput     = "myvolume.dmg"
	DefaultEncryption = "AES-256"
	DefaultFilesystem = "APFS"
	DefaultImageType  = "UDIF"
)

// CreateOptions contains the parameters for creating an encrypted disk image.
// Values are passed to hdiutil as-is; they are not interpreted here.
type CreateOptions struct {
	// Size of the image (e.g. "100m", "1g")
	Size string

	// VolumeName is the label of the volume inside the image
	VolumeName string

	// Output is the path of the image file to create
	Output string

	// Encryption algorithm (e.g. "AES-128", "AES-256")
	Encryption string

	// Filesystem to format the volume with (e.g. "APFS", "HFS+")
	Filesystem string

	// ImageType is the disk image container type (e.g. "UDIF", "SPARSE")
	ImageType string
}

// DefaultCreateOptions returns options populated with the default values
func DefaultCreateOptions() CreateOptions {
	return CreateOptions{
		Size:       DefaultSize,
		VolumeName: DefaultVolumeName,
		Output:     DefaultOutput,
		Encryption: DefaultEncryption,
		Filesystem: DefaultFilesystem,
		ImageType:  DefaultImageType,
	}
}

// Validate checks that every option is set
func (o CreateOptions) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"size", o.Size},
		{"volume name", o.VolumeName},
		{"output", o.Output},
		{"encryption", o.Encryption},
		{"filesystem", o.Filesystem},
		{"image type", o.ImageType},
	}

	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidOption, f.name)
		}
	}
	return nil
}
