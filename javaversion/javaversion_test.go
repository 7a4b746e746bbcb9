// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package javaversion

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jongio/droidenv/cmdutil"
	"github.com/jongio/droidenv/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMajor(t *testing.T) {
	tests := []struct {
		banner string
		want   int
	}{
		{banner: "javac 1.8.0_292", want: 8},
		{banner: "javac 17.0.13", want: 17},
		{banner: "javac 24-ea", want: 24},
		{banner: "javac 21", want: 21},
		{banner: "javac 11.0.2\n", want: 11},
		{banner: "javac 1.7.0_80", want: 7},
		{banner: "error", want: 0},
		{banner: "", want: 0},
		{banner: "javac", want: 0},
		{banner: "javac 1", want: 0},
		{banner: "javac abc", want: 0},
		{banner: "javac -17", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.banner, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMajor(tt.banner))
		})
	}
}

func javacCmd(home, goos string) string {
	name := "javac"
	if goos == "windows" {
		name += ".exe"
	}
	return filepath.Join(home, "bin", name) + " -version"
}

func TestDetect(t *testing.T) {
	home := filepath.Join("opt", "jdk")
	runner := testutil.NewFakeRunner().On(javacCmd(home, "linux"), cmdutil.Result{Stdout: "javac 17.0.13\n"})

	major, err := Detect(context.Background(), runner, home, "linux")
	require.NoError(t, err)
	assert.Equal(t, 17, major)
}

func TestDetectWindowsExecutable(t *testing.T) {
	home := "jdk"
	runner := testutil.NewFakeRunner().On(javacCmd(home, "windows"), cmdutil.Result{Stdout: "javac 21.0.2\r\n"})

	major, err := Detect(context.Background(), runner, home, "windows")
	require.NoError(t, err)
	assert.Equal(t, 21, major)
}

func TestDetectStderrBanner(t *testing.T) {
	home := filepath.Join("opt", "jdk8")
	runner := testutil.NewFakeRunner().On(javacCmd(home, "linux"), cmdutil.Result{Stderr: "javac 1.8.0_292\n"})

	major, err := Detect(context.Background(), runner, home, "linux")
	require.NoError(t, err)
	assert.Equal(t, 8, major)
}

func TestDetectPrefersStdout(t *testing.T) {
	home := filepath.Join("opt", "jdk")
	runner := testutil.NewFakeRunner().On(javacCmd(home, "linux"), cmdutil.Result{
		Stdout: "javac 17.0.1\n",
		Stderr: "Picked up JAVA_TOOL_OPTIONS: -Xmx1g\n",
	})

	major, err := Detect(context.Background(), runner, home, "linux")
	require.NoError(t, err)
	assert.Equal(t, 17, major)
}

func TestDetectUnparseableBanner(t *testing.T) {
	home := filepath.Join("opt", "jdk")
	runner := testutil.NewFakeRunner().On(javacCmd(home, "linux"), cmdutil.Result{Stdout: "error\n"})

	major, err := Detect(context.Background(), runner, home, "linux")
	assert.Zero(t, major)

	var bannerErr *BannerError
	require.True(t, errors.As(err, &bannerErr))
	assert.Equal(t, "error", bannerErr.Banner)
	assert.Contains(t, err.Error(), `"error"`)
}

func TestDetectNonZeroExit(t *testing.T) {
	home := filepath.Join("opt", "jdk")
	runner := testutil.NewFakeRunner().On(javacCmd(home, "linux"), cmdutil.Result{
		ExitCode: 1,
		Stderr:   "Error: could not find libjava.so\n",
	})

	major, err := Detect(context.Background(), runner, home, "linux")
	assert.Zero(t, major)

	var exitErr *cmdutil.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Stderr, "libjava.so")

	var bannerErr *BannerError
	assert.False(t, errors.As(err, &bannerErr))
}

func TestDetectSpawnFailure(t *testing.T) {
	major, err := Detect(context.Background(), testutil.NewFakeRunner(), "missing", "linux")
	assert.Zero(t, major)

	var spawnErr *cmdutil.SpawnError
	require.True(t, errors.As(err, &spawnErr))
	assert.ErrorIs(t, err, exec.ErrNotFound)
}

func TestDetectWithoutJavaHome(t *testing.T) {
	runner := testutil.NewFakeRunner()

	major, err := Detect(context.Background(), runner, "", "linux")
	assert.Zero(t, major)
	assert.ErrorIs(t, err, ErrNoJavaHome)
	assert.Empty(t, runner.Calls())
}
