// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package toolchain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jongio/droidenv/cmdutil"
	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/javaversion"
	"github.com/jongio/droidenv/metrics"
	"github.com/jongio/droidenv/testutil"
)

// newSDK creates an SDK tree with platforms android-30, android-31,
// android-9 and android-33-ext4, plus build tools 30.0.3 and 34.0.0.
func newSDK(t *testing.T) string {
	t.Helper()
	sdk := t.TempDir()
	for _, p := range []string{"android-30", "android-31", "android-9", "android-33-ext4"} {
		testutil.WriteFile(t, sdk, "platforms/"+p+"/android.jar", "")
	}
	testutil.MakeDirs(t, sdk, "platforms/android-35")
	for _, bt := range []string{"30.0.3", "34.0.0"} {
		testutil.WriteFile(t, sdk, "build-tools/"+bt+"/lib/d8.jar", "")
	}
	return sdk
}

func newJDK(t *testing.T, goos string) string {
	t.Helper()
	home := t.TempDir()
	suffix := ""
	if goos == "windows" {
		suffix = ".exe"
	}
	testutil.WriteFile(t, home, "bin/java"+suffix, "")
	testutil.WriteFile(t, home, "bin/javac"+suffix, "")
	return home
}

func newResolver(vars map[string]string, runner *testutil.FakeRunner) *Resolver {
	if runner == nil {
		runner = testutil.NewFakeRunner()
	}
	return New(Options{Env: env.FromMap(vars), Runner: runner, GOOS: "linux"})
}

func TestSDKRoot(t *testing.T) {
	sdk := newSDK(t)
	other := newSDK(t)
	missing := filepath.Join(t.TempDir(), "missing")

	t.Run("ANDROID_HOME wins", func(t *testing.T) {
		r := newResolver(map[string]string{env.AndroidHome: sdk, env.AndroidSDKRoot: other}, nil)
		res := r.ResolveSDKRoot()
		assert.Equal(t, sdk, res.Value)
		assert.Equal(t, StrategyEnv, res.Strategy)
		assert.Equal(t, env.AndroidHome, res.Origin)
	})

	t.Run("missing ANDROID_HOME skipped", func(t *testing.T) {
		r := newResolver(map[string]string{env.AndroidHome: missing, env.AndroidSDKRoot: other}, nil)
		got, ok := r.SDKRoot()
		assert.True(t, ok)
		assert.Equal(t, other, got)
	})

	t.Run("empty equals unset", func(t *testing.T) {
		a, okA := newResolver(map[string]string{env.AndroidSDKRoot: other}, nil).SDKRoot()
		b, okB := newResolver(map[string]string{env.AndroidHome: "", env.AndroidSDKRoot: other}, nil).SDKRoot()
		assert.Equal(t, okA, okB)
		assert.Equal(t, a, b)
	})

	t.Run("default location", func(t *testing.T) {
		home := t.TempDir()
		testutil.MakeDirs(t, home, "Android/Sdk")
		res := newResolver(map[string]string{env.Home: home}, nil).ResolveSDKRoot()
		assert.Equal(t, filepath.Join(home, "Android", "Sdk"), res.Value)
		assert.Equal(t, StrategyDefaultLocation, res.Strategy)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, ok := newResolver(nil, nil).SDKRoot()
		assert.False(t, ok)
	})
}

func TestAndroidJar(t *testing.T) {
	sdk := newSDK(t)

	t.Run("ANDROID_JAR bypasses the SDK", func(t *testing.T) {
		jar := testutil.WriteFile(t, t.TempDir(), "custom/android.jar", "")
		got, ok := newResolver(map[string]string{env.AndroidJar: jar}, nil).AndroidJar("30")
		assert.True(t, ok)
		assert.Equal(t, jar, got)
	})

	t.Run("missing ANDROID_JAR falls back", func(t *testing.T) {
		got, ok := newResolver(map[string]string{
			env.AndroidJar:  filepath.Join(sdk, "nope.jar"),
			env.AndroidHome: sdk,
		}, nil).AndroidJar("30")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(sdk, "platforms", "android-30", "android.jar"), got)
	})

	t.Run("argument bypasses base variables", func(t *testing.T) {
		r := newResolver(map[string]string{
			env.AndroidHome:       sdk,
			env.AndroidPlatform:   "android-31",
			env.AndroidAPILevel:   "9",
			env.AndroidSDKVersion: "35",
		}, nil)
		res := r.ResolveAndroidJar("android-30")
		assert.Equal(t, filepath.Join(sdk, "platforms", "android-30", "android.jar"), res.Value)
		assert.Equal(t, StrategyVersioned, res.Strategy)
		assert.Empty(t, res.Origin)
	})

	t.Run("environment platform with extension", func(t *testing.T) {
		res := newResolver(map[string]string{
			env.AndroidHome:         sdk,
			env.AndroidAPILevel:     "33",
			env.AndroidSDKExtension: "ext4",
		}, nil).ResolveAndroidJar("")
		assert.Equal(t, filepath.Join(sdk, "platforms", "android-33-ext4", "android.jar"), res.Value)
		assert.Equal(t, env.AndroidAPILevel, res.Origin)
	})

	t.Run("configured platform not installed", func(t *testing.T) {
		_, ok := newResolver(map[string]string{env.AndroidHome: sdk, env.AndroidPlatform: "35"}, nil).AndroidJar("")
		assert.False(t, ok, "an explicit platform must not fall back to the newest one")
	})

	t.Run("newest platform by string order", func(t *testing.T) {
		res := newResolver(map[string]string{env.AndroidHome: sdk}, nil).ResolveAndroidJar("")
		assert.Equal(t, filepath.Join(sdk, "platforms", "android-9", "android.jar"), res.Value)
		assert.Equal(t, StrategyLatestScan, res.Strategy)
	})

	t.Run("no SDK", func(t *testing.T) {
		_, ok := newResolver(nil, nil).AndroidJar("30")
		assert.False(t, ok)
	})
}

func TestD8Jar(t *testing.T) {
	sdk := newSDK(t)

	t.Run("ANDROID_D8_JAR bypasses the SDK", func(t *testing.T) {
		jar := testutil.WriteFile(t, t.TempDir(), "d8.jar", "")
		got, ok := newResolver(map[string]string{env.AndroidD8Jar: jar}, nil).D8Jar("")
		assert.True(t, ok)
		assert.Equal(t, jar, got)
	})

	t.Run("argument", func(t *testing.T) {
		got, ok := newResolver(map[string]string{
			env.AndroidHome:              sdk,
			env.AndroidBuildToolsVersion: "34.0.0",
		}, nil).D8Jar("30.0.3")
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(sdk, "build-tools", "30.0.3", "lib", "d8.jar"), got)
	})

	t.Run("environment version", func(t *testing.T) {
		res := newResolver(map[string]string{
			env.AndroidHome:              sdk,
			env.AndroidBuildToolsVersion: "30.0.3",
		}, nil).ResolveD8Jar("")
		assert.Equal(t, filepath.Join(sdk, "build-tools", "30.0.3", "lib", "d8.jar"), res.Value)
		assert.Equal(t, env.AndroidBuildToolsVersion, res.Origin)
	})

	t.Run("configured version not installed", func(t *testing.T) {
		_, ok := newResolver(map[string]string{env.AndroidHome: sdk}, nil).D8Jar("35.0.0")
		assert.False(t, ok)
	})

	t.Run("newest build tools", func(t *testing.T) {
		res := newResolver(map[string]string{env.AndroidHome: sdk}, nil).ResolveD8Jar("")
		assert.Equal(t, filepath.Join(sdk, "build-tools", "34.0.0", "lib", "d8.jar"), res.Value)
		assert.Equal(t, StrategyLatestScan, res.Strategy)
	})
}

func TestJavaHome(t *testing.T) {
	jdk := newJDK(t, "linux")

	t.Run("JAVA_HOME", func(t *testing.T) {
		runner := testutil.NewFakeRunner()
		got, err := newResolver(map[string]string{env.JavaHome: jdk}, runner).JavaHome(context.Background())
		require.NoError(t, err)
		assert.Equal(t, jdk, got)
		assert.Empty(t, runner.Calls(), "discovery must not run when JAVA_HOME exists")
	})

	t.Run("discovery", func(t *testing.T) {
		runner := testutil.NewFakeRunner().On("which java", cmdutil.Result{Stdout: filepath.Join(jdk, "bin", "java") + "\n"})
		res, err := newResolver(map[string]string{env.JavaHome: filepath.Join(jdk, "missing")}, runner).ResolveJavaHome(context.Background())
		require.NoError(t, err)
		assert.Equal(t, jdk, res.Value)
		assert.Equal(t, StrategyDiscovery, res.Strategy)
	})

	t.Run("discovery fails", func(t *testing.T) {
		runner := testutil.NewFakeRunner().On("which java", cmdutil.Result{ExitCode: 1})
		got, err := newResolver(nil, runner).JavaHome(context.Background())
		assert.Empty(t, got)

		var exitErr *cmdutil.ExitError
		assert.True(t, errors.As(err, &exitErr))
	})

	t.Run("nothing found", func(t *testing.T) {
		got, err := newResolver(nil, nil).JavaHome(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestJavaAndJavac(t *testing.T) {
	t.Run("linux", func(t *testing.T) {
		jdk := newJDK(t, "linux")
		r := newResolver(map[string]string{env.JavaHome: jdk}, nil)

		java, err := r.Java(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(jdk, "bin", "java"), java)

		javac, err := r.Javac(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(jdk, "bin", "javac"), javac)
	})

	t.Run("windows", func(t *testing.T) {
		jdk := newJDK(t, "windows")
		r := New(Options{Env: env.FromMap(map[string]string{env.JavaHome: jdk}), Runner: testutil.NewFakeRunner(), GOOS: "windows"})

		javac, err := r.Javac(context.Background())
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(jdk, "bin", "javac.exe"), javac)
	})

	t.Run("JRE without javac", func(t *testing.T) {
		jre := t.TempDir()
		testutil.WriteFile(t, jre, "bin/java", "")
		r := newResolver(map[string]string{env.JavaHome: jre}, nil)

		javac, err := r.Javac(context.Background())
		require.NoError(t, err)
		assert.Empty(t, javac)
	})
}

func TestJavacMajorVersion(t *testing.T) {
	jdk := newJDK(t, "linux")
	javac := filepath.Join(jdk, "bin", "javac") + " -version"

	t.Run("detected", func(t *testing.T) {
		rec := metrics.NewRecorder()
		runner := testutil.NewFakeRunner().On(javac, cmdutil.Result{Stderr: "javac 1.8.0_292\n"})
		r := New(Options{Env: env.FromMap(nil), Runner: runner, GOOS: "linux", Metrics: rec})

		major, err := r.JavacMajorVersion(context.Background(), jdk)
		require.NoError(t, err)
		assert.Equal(t, 8, major)
	})

	t.Run("banner error", func(t *testing.T) {
		runner := testutil.NewFakeRunner().On(javac, cmdutil.Result{Stdout: "error"})
		major, err := newResolver(nil, runner).JavacMajorVersion(context.Background(), jdk)
		assert.Zero(t, major)

		var bannerErr *javaversion.BannerError
		assert.True(t, errors.As(err, &bannerErr))
	})
}

func TestJavaSourceAndTargetPassThrough(t *testing.T) {
	r := newResolver(map[string]string{env.JavaSourceVersion: "1.8", env.JavaTargetVersion: " 17 "}, nil)

	src, ok := r.JavaSourceVersion()
	assert.True(t, ok)
	assert.Equal(t, "1.8", src)

	target, ok := r.JavaTargetVersion()
	assert.True(t, ok)
	assert.Equal(t, " 17 ", target)

	_, ok = newResolver(map[string]string{env.JavaSourceVersion: ""}, nil).JavaSourceVersion()
	assert.False(t, ok)
}

func TestPlatformStringAndBuildTools(t *testing.T) {
	r := newResolver(map[string]string{
		env.AndroidSDKVersion:        "33",
		env.AndroidSDKExtension:      "-ext4",
		env.AndroidBuildToolsVersion: "34.0.0",
	}, nil)

	p, ok := r.PlatformString("")
	assert.True(t, ok)
	assert.Equal(t, "android-33-ext4", p)

	p, ok = r.PlatformString("android-34-ext12")
	assert.True(t, ok)
	assert.Equal(t, "android-34-ext12", p)

	bt, ok := r.BuildToolsVersion("")
	assert.True(t, ok)
	assert.Equal(t, "34.0.0", bt)

	bt, _ = r.BuildToolsVersion("35.0.0")
	assert.Equal(t, "35.0.0", bt)
}

func TestMetricsRecorded(t *testing.T) {
	sdk := newSDK(t)
	rec := metrics.NewRecorder()
	r := New(Options{
		Env:     env.FromMap(map[string]string{env.AndroidHome: sdk}),
		Runner:  testutil.NewFakeRunner(),
		GOOS:    "linux",
		Metrics: rec,
	})

	_, ok := r.AndroidJar("")
	require.True(t, ok)
	_, err := r.JavaHome(context.Background())
	require.NoError(t, err)

	count, err := promtest.GatherAndCount(rec.Registry(), "droidenv_resolution_total")
	require.NoError(t, err)
	// android-sdk/env, android-jar/latest-scan, java-home/discovery
	assert.Equal(t, 3, count)

	count, err = promtest.GatherAndCount(rec.Registry(), "droidenv_subprocess_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "the unscripted `which java` counts as a spawn error")
}

func TestMetricsStrategyLabels(t *testing.T) {
	sdk := newSDK(t)
	jdk := newJDK(t, "linux")
	rec := metrics.NewRecorder()
	r := New(Options{
		Env:     env.FromMap(map[string]string{env.AndroidHome: sdk, env.JavaHome: jdk}),
		Runner:  testutil.NewFakeRunner(),
		GOOS:    "linux",
		Metrics: rec,
	})

	_, ok := r.AndroidJar("30")
	require.True(t, ok)
	_, ok = r.D8Jar("34.0.0")
	require.True(t, ok)
	_, err := r.Javac(context.Background())
	require.NoError(t, err)

	families, err := rec.Registry().Gather()
	require.NoError(t, err)
	var strategies []string
	for _, mf := range families {
		if mf.GetName() != "droidenv_resolution_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "strategy" {
					strategies = append(strategies, l.GetValue())
				}
			}
		}
	}

	known := []string{StrategyEnv, StrategyArgument, StrategyDefaultLocation, StrategyVersioned,
		StrategyLatestScan, StrategyDiscovery, StrategyDerived, StrategyDetection, "none"}
	assert.Subset(t, known, strategies)
	assert.Contains(t, strategies, StrategyVersioned)
	assert.Contains(t, strategies, StrategyDerived)
}

func TestNotFound(t *testing.T) {
	err := NotFound(ResourceD8Jar)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "d8-jar not found")
	assert.Contains(t, err.Error(), "build-tools;")

	assert.EqualError(t, NotFound("something"), "something not found")
}
