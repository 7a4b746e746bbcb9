// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

// Variables recognized by the resolvers.
const (
	// AndroidHome is the preferred Android SDK root override.
	AndroidHome = "ANDROID_HOME"
	// AndroidSDKRoot is the legacy Android SDK root override.
	AndroidSDKRoot = "ANDROID_SDK_ROOT"

	// AndroidPlatform, AndroidAPILevel and AndroidSDKVersion are equally ranked
	// sources for the platform string, e.g. "33" or "android-33-ext4".
	AndroidPlatform   = "ANDROID_PLATFORM"
	AndroidAPILevel   = "ANDROID_API_LEVEL"
	AndroidSDKVersion = "ANDROID_SDK_VERSION"

	// AndroidSDKExtension is an optional extension suffix: "4", "ext4" or "-ext4".
	AndroidSDKExtension = "ANDROID_SDK_EXTENSION"

	// AndroidBuildToolsVersion selects the build-tools subdirectory, e.g. "34.0.0".
	AndroidBuildToolsVersion = "ANDROID_BUILD_TOOLS_VERSION"

	// AndroidD8Jar and AndroidJar point directly at the jars and bypass the SDK lookup.
	AndroidD8Jar = "ANDROID_D8_JAR"
	AndroidJar   = "ANDROID_JAR"

	// JavaHome is the JDK root override.
	JavaHome = "JAVA_HOME"

	// JavaSourceVersion and JavaTargetVersion are passed through verbatim to
	// compiler argument builders.
	JavaSourceVersion = "JAVA_SOURCE_VERSION"
	JavaTargetVersion = "JAVA_TARGET_VERSION"

	// Home is the user home directory on Unix-like systems.
	Home = "HOME"
	// UserProfile is the user profile directory on Windows.
	UserProfile = "USERPROFILE"
)

// Recognized lists every variable that influences resolution, in display order.
var Recognized = []string{
	AndroidHome,
	AndroidSDKRoot,
	AndroidPlatform,
	AndroidAPILevel,
	AndroidSDKVersion,
	AndroidSDKExtension,
	AndroidBuildToolsVersion,
	AndroidD8Jar,
	AndroidJar,
	JavaHome,
	JavaSourceVersion,
	JavaTargetVersion,
}

// PlatformVars are the base variables for the platform string, in priority order.
var PlatformVars = []string{AndroidPlatform, AndroidAPILevel, AndroidSDKVersion}

// SDKRootVars are the SDK root overrides, in priority order.
var SDKRootVars = []string{AndroidHome, AndroidSDKRoot}
