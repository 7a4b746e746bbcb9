// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package platformver builds canonical Android platform strings such as
// "android-33" or "android-33-ext4" from partial environment inputs.
//
// The base API level is taken from the first non-empty of an explicit
// override, ANDROID_PLATFORM, ANDROID_API_LEVEL and ANDROID_SDK_VERSION.
// ANDROID_SDK_EXTENSION may be "4", "ext4" or "-ext4"; it is ignored when
// the base already names an extension.
package platformver
