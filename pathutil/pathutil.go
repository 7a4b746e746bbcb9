// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/fileutil"
)

// ExecutableName returns name as it appears on disk for goos: Windows gets a
// ".exe" suffix unless one is already present.
func ExecutableName(goos, name string) string {
	if goos == "windows" && !strings.HasSuffix(strings.ToLower(name), ".exe") {
		return name + ".exe"
	}
	return name
}

// ToolPath returns <javaHome>/bin/<tool> for goos.
func ToolPath(javaHome, goos, tool string) string {
	return filepath.Join(javaHome, "bin", ExecutableName(goos, tool))
}

// FindToolInPath searches the PATH of e for the executable of toolName on goos.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPath(goos, toolName string, e env.Environment) string {
	sep := ":"
	if goos == "windows" {
		sep = ";"
	}
	name := ExecutableName(goos, toolName)
	for _, dir := range strings.Split(env.Get(e, "PATH"), sep) {
		if dir == "" {
			continue
		}
		if path := filepath.Join(dir, name); fileutil.IsRegularFile(path) {
			return path
		}
	}
	return ""
}

// jdkInstallPatterns returns glob patterns matching JDK homes installed by the
// usual package managers and installers on goos.
func jdkInstallPatterns(goos string, e env.Environment) []string {
	switch goos {
	case "windows":
		var patterns []string
		for _, root := range []string{env.Get(e, "ProgramFiles"), `C:\Program Files`} {
			if root == "" {
				continue
			}
			for _, vendor := range []string{"Java", "Eclipse Adoptium", "Microsoft", "Zulu", "Android\\Android Studio"} {
				patterns = append(patterns, filepath.Join(root, vendor, "*"))
			}
		}
		return patterns
	case "darwin":
		return []string{
			"/Library/Java/JavaVirtualMachines/*/Contents/Home",
			"/opt/homebrew/opt/openjdk*/libexec/openjdk.jdk/Contents/Home",
			"/Applications/Android Studio.app/Contents/jbr/Contents/Home",
		}
	default:
		patterns := []string{"/usr/lib/jvm/*", "/usr/java/*", "/opt/java/*"}
		if home := env.Get(e, env.Home); home != "" {
			patterns = append(patterns, filepath.Join(home, ".sdkman", "candidates", "java", "*"))
		}
		return patterns
	}
}

// SearchJDKInstallDirs returns the JDK homes found in common installation
// directories, i.e. directories that contain bin/javac. The result is sorted
// and free of duplicates.
func SearchJDKInstallDirs(goos string, e env.Environment) []string {
	seen := map[string]bool{}
	var homes []string
	for _, pattern := range jdkInstallPatterns(goos, e) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			continue
		}
		for _, home := range matches {
			if seen[home] || !fileutil.IsRegularFile(ToolPath(home, goos, "javac")) {
				continue
			}
			seen[home] = true
			homes = append(homes, home)
		}
	}
	sort.Strings(homes)
	return homes
}

// InstallSuggestion returns a suggestion for how to install a missing tool or
// SDK component.
func InstallSuggestion(toolName string) string {
	suggestions := map[string]string{
		"java":        "Install a JDK from https://adoptium.net/ and set JAVA_HOME",
		"javac":       "Install a JDK (not a JRE) from https://adoptium.net/ and set JAVA_HOME",
		"android-sdk": "Install Android Studio from https://developer.android.com/studio or set ANDROID_HOME",
		"android-jar": `Install a platform with: sdkmanager "platforms;android-<level>"`,
		"d8":          `Install build tools with: sdkmanager "build-tools;<version>"`,
		"sdkmanager":  "Install the command-line tools from https://developer.android.com/studio#command-line-tools-only",
		"adb":         `Install platform tools with: sdkmanager "platform-tools"`,
	}

	if suggestion, ok := suggestions[toolName]; ok {
		return suggestion
	}
	return fmt.Sprintf("Please install %s manually", toolName)
}
