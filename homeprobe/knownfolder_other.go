//go:build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package homeprobe

type nativeFolders struct{}

// NativeFolders returns KnownFolders for this platform. There is no known-folder
// API outside Windows, so Profile always reports absence.
func NativeFolders() KnownFolders {
	return nativeFolders{}
}

func (nativeFolders) Profile() (string, bool) {
	return "", false
}
