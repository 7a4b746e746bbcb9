// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package homeprobe

import (
	"github.com/jongio/droidenv/env"
)

// KnownFolders resolves user folders through an OS-provided mechanism.
type KnownFolders interface {
	// Profile returns the current user's profile directory.
	Profile() (string, bool)
}

// KnownFoldersFunc adapts a function to KnownFolders.
type KnownFoldersFunc func() (string, bool)

// Profile calls f.
func (f KnownFoldersFunc) Profile() (string, bool) {
	return f()
}

// EnvFolders reads the profile directory from USERPROFILE.
// It is a substitute for NativeFolders where the native API is unavailable;
// the variable can be stale under roaming or sandboxed profiles.
type EnvFolders struct {
	Env env.Environment
}

// Profile implements KnownFolders.
func (f EnvFolders) Profile() (string, bool) {
	p := env.Get(f.Env, env.UserProfile)
	return p, p != ""
}
