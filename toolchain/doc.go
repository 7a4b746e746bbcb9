// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package toolchain resolves the Android SDK, its jars and the JDK that Java
// and Android build steps need.
//
// Every lookup tries an environment override first, then falls back to the
// platform default location, the configured version, or the newest installed
// version, in that order. A lookup that finds nothing returns an explicit
// absence rather than an error; callers decide whether a missing resource is
// fatal for what they are doing.
//
// # Example
//
//	r := toolchain.New(toolchain.Options{})
//	jar, ok := r.AndroidJar("")
//	if !ok {
//	    return toolchain.NotFound("android-jar")
//	}
//
// All inputs are injectable through Options, which keeps tests independent
// of the real process environment, filesystem defaults and installed JDKs.
package toolchain
