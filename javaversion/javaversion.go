// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package javaversion detects the major version of a JDK's javac.
package javaversion

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jongio/droidenv/cmdutil"
	"github.com/jongio/droidenv/logutil"
	"github.com/jongio/droidenv/pathutil"
)

// ErrNoJavaHome is returned by Detect when called without a JDK home.
var ErrNoJavaHome = errors.New("no JDK home to detect the javac version of")

// BannerError reports a javac that ran successfully but printed a version
// banner that could not be parsed.
type BannerError struct {
	Banner string
}

func (e *BannerError) Error() string {
	return fmt.Sprintf("unrecognized javac version banner %q", e.Banner)
}

var log = logutil.NewLogger("javaversion")

// ParseMajor extracts the major version from a banner such as
// "javac 17.0.13", "javac 1.8.0_292" or "javac 24-ea". Releases up to 8 use
// the "1.X" scheme and report X. It returns 0 when the banner cannot be
// parsed; 0 is never a real version.
func ParseMajor(banner string) int {
	fields := strings.Fields(banner)
	if len(fields) < 2 {
		return 0
	}

	raw, _, _ := strings.Cut(fields[1], "-")
	parts := strings.Split(raw, ".")
	major := parts[0]
	if major == "1" {
		if len(parts) < 2 {
			return 0
		}
		major = parts[1]
	}

	n, err := strconv.Atoi(major)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Detect runs <javaHome>/bin/javac -version through runner and returns the
// major version. Older JDKs print the banner on stderr, which is used when
// stdout is empty.
//
// A javac that cannot be started returns its *cmdutil.SpawnError, one that
// exits non-zero a *cmdutil.ExitError, and an unparseable banner a
// *BannerError. The version is 0 whenever err is non-nil.
func Detect(ctx context.Context, runner cmdutil.Runner, javaHome, goos string) (int, error) {
	if javaHome == "" {
		return 0, ErrNoJavaHome
	}

	javac := pathutil.ToolPath(javaHome, goos, "javac")
	res, err := runner.Run(ctx, javac, "-version")
	if err != nil {
		return 0, err
	}
	if !res.Success() {
		return 0, res.Err(javac, "-version")
	}

	banner := strings.TrimSpace(res.Stdout)
	if banner == "" {
		banner = strings.TrimSpace(res.Stderr)
	}

	major := ParseMajor(banner)
	if major == 0 {
		return 0, &BannerError{Banner: banner}
	}

	log.WithResource("javac-version").Debug("detected javac version", "major", major, "banner", banner)
	return major, nil
}
