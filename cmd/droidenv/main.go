// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command droidenv resolves the Android SDK, its jars and the JDK for build
// scripts.
package main

import (
	"github.com/jongio/droidenv/internal/cli"
)

func main() {
	cli.Execute()
}
