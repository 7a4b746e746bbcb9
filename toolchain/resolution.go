// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package toolchain

import (
	"errors"
	"fmt"

	"github.com/jongio/droidenv/pathutil"
)

// Resources that can be resolved.
const (
	ResourceSDK        = "android-sdk"
	ResourcePlatform   = "platform"
	ResourceAndroidJar = "android-jar"
	ResourceBuildTools = "build-tools"
	ResourceD8Jar      = "d8-jar"
	ResourceJavaHome   = "java-home"
	ResourceJava       = "java"
	ResourceJavac      = "javac"
	ResourceJavacMajor = "javac-version"
)

// Strategies that can produce a value.
const (
	// StrategyEnv is a value taken from an environment variable.
	StrategyEnv = "env"
	// StrategyArgument is a value passed in by the caller.
	StrategyArgument = "argument"
	// StrategyDefaultLocation is the per-platform SDK install location.
	StrategyDefaultLocation = "default-location"
	// StrategyVersioned is an SDK path built from a configured version.
	StrategyVersioned = "versioned"
	// StrategyLatestScan is the newest installed version in the SDK.
	StrategyLatestScan = "latest-scan"
	// StrategyDiscovery is the platform JDK discovery command.
	StrategyDiscovery = "discovery"
	// StrategyDerived is a path derived from another resolved resource.
	StrategyDerived = "derived"
	// StrategyDetection is the javac version query.
	StrategyDetection = "detection"
)

// Resolution describes how a resource was resolved.
type Resolution struct {
	Resource string `json:"resource" yaml:"resource"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	// Origin is the environment variable the value came from, if any.
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Found reports whether a value was resolved.
func (r Resolution) Found() bool {
	return r.Value != ""
}

// ErrNotFound is wrapped by NotFound.
var ErrNotFound = errors.New("not found")

// installHints maps resources to pathutil install suggestion keys.
var installHints = map[string]string{
	ResourceSDK:        "android-sdk",
	ResourceAndroidJar: "android-jar",
	ResourceD8Jar:      "d8",
	ResourceJavaHome:   "java",
	ResourceJava:       "java",
	ResourceJavac:      "javac",
	ResourceJavacMajor: "javac",
}

// NotFound returns the user-facing error for a required resource that no
// strategy could resolve.
func NotFound(resource string) error {
	if tool, ok := installHints[resource]; ok {
		return fmt.Errorf("%s %w: %s", resource, ErrNotFound, pathutil.InstallSuggestion(tool))
	}
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}
