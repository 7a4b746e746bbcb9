// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package homeprobe discovers default locations for the Android SDK and the JDK
// when no environment override is set.
//
// A Locator is chosen at runtime from the target operating system name, so the
// same binary (and the same tests) can exercise every platform's strategy:
//
//	loc := homeprobe.ForPlatform(runtime.GOOS, homeprobe.Deps{})
//	if sdk, ok := loc.AndroidSDK(); ok {
//	    fmt.Println("SDK:", sdk)
//	}
//
// # Android SDK Defaults
//
//   - darwin: $HOME/Library/Android/sdk
//   - linux: $HOME/Android/Sdk
//   - windows: <profile>/AppData/Local/Android/Sdk, where <profile> comes from the
//     KnownFolders capability (SHGetKnownFolderPath(FOLDERID_Profile) natively)
//   - everything else: no default
//
// A default is returned only when the directory exists.
//
// # JDK Discovery
//
// The JDK home is found by running a discovery command:
//
//   - darwin: /usr/libexec/java_home, whose output is already the JDK home
//   - windows: where java
//   - other Unix-like systems: which java
//
// When the command prints several candidates the last one is used and all of
// them are reported on the diagnostics side channel. The chosen path is followed
// through any chain of symlinks (relative targets are relative to the directory
// holding the link); on every platform except darwin the final "bin/java" is
// then stripped to obtain the home directory.
//
// A discovery command that cannot be started, or that prints nothing, yields
// absence. A command that runs and exits non-zero is reported as a
// *cmdutil.ExitError carrying its stderr.
package homeprobe
