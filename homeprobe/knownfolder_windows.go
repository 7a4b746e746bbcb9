//go:build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package homeprobe

import (
	"golang.org/x/sys/windows"
)

type nativeFolders struct{}

// NativeFolders returns KnownFolders backed by SHGetKnownFolderPath.
func NativeFolders() KnownFolders {
	return nativeFolders{}
}

// Profile asks the shell for FOLDERID_Profile instead of reading %USERPROFILE%.
func (nativeFolders) Profile() (string, bool) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_Profile, 0)
	if err != nil || path == "" {
		return "", false
	}
	return path, true
}
