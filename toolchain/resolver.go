// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package toolchain

import (
	"context"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/jongio/droidenv/cmdutil"
	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/fileutil"
	"github.com/jongio/droidenv/homeprobe"
	"github.com/jongio/droidenv/javaversion"
	"github.com/jongio/droidenv/logutil"
	"github.com/jongio/droidenv/metrics"
	"github.com/jongio/droidenv/pathutil"
	"github.com/jongio/droidenv/platformver"
	"github.com/jongio/droidenv/versionscan"
)

// Options configures a Resolver. Zero fields get defaults.
type Options struct {
	// Env is read for every override. Defaults to the process environment.
	Env env.Environment
	// Runner spawns discovery and version commands. Defaults to os/exec.
	Runner cmdutil.Runner
	// GOOS selects platform behaviour. Defaults to runtime.GOOS.
	GOOS string
	// Locator finds platform defaults. Defaults to homeprobe.ForPlatform(GOOS).
	Locator homeprobe.Locator
	// Logger receives diagnostics. Defaults to the "toolchain" logger.
	Logger *logutil.ComponentLogger
	// Metrics, when set, counts resolutions and times subprocesses.
	Metrics *metrics.Recorder
}

// Resolver resolves toolchain resources. It holds no state between calls;
// every lookup rereads the environment and the filesystem.
type Resolver struct {
	env     env.Environment
	runner  cmdutil.Runner
	goos    string
	locator homeprobe.Locator
	log     *logutil.ComponentLogger
	metrics *metrics.Recorder
}

// New creates a Resolver.
func New(opts Options) *Resolver {
	r := &Resolver{
		env:     opts.Env,
		runner:  opts.Runner,
		goos:    opts.GOOS,
		locator: opts.Locator,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
	if r.env == nil {
		r.env = env.OS()
	}
	if r.runner == nil {
		r.runner = cmdutil.NewExecRunner()
	}
	r.runner = r.metrics.InstrumentRunner(r.runner)
	if r.goos == "" {
		r.goos = runtime.GOOS
	}
	if r.log == nil {
		r.log = logutil.NewLogger("toolchain")
	}
	if r.locator == nil {
		r.locator = homeprobe.ForPlatform(r.goos, homeprobe.Deps{
			Env:    r.env,
			Runner: r.runner,
			Log:    logutil.NewLogger("homeprobe"),
		})
	}
	return r
}

// GOOS returns the platform the Resolver resolves for.
func (r *Resolver) GOOS() string {
	return r.goos
}

// record logs and counts a finished resolution and returns it.
func (r *Resolver) record(res Resolution) Resolution {
	outcome := metrics.OutcomeAbsent
	switch {
	case res.Error != "":
		outcome = metrics.OutcomeError
	case res.Found():
		outcome = metrics.OutcomeFound
	}
	r.metrics.RecordResolution(res.Resource, res.Strategy, outcome)

	log := r.log.WithResource(res.Resource)
	if res.Strategy != "" {
		log = log.WithStrategy(res.Strategy)
	}
	switch outcome {
	case metrics.OutcomeFound:
		log.Debug("resolved", "value", res.Value, "origin", res.Origin)
	case metrics.OutcomeError:
		log.Debug("resolution failed", "error", res.Error)
	default:
		log.Debug("not found")
	}
	return res
}

func fromEnv(resource, value, name string) Resolution {
	return Resolution{Resource: resource, Value: value, Strategy: StrategyEnv, Origin: name}
}

// ResolveSDKRoot resolves the Android SDK root: ANDROID_HOME, then
// ANDROID_SDK_ROOT, then the platform default location. Overrides that name
// a missing path are skipped.
func (r *Resolver) ResolveSDKRoot() Resolution {
	if v, name, ok := env.FirstExistingPath(r.env, env.SDKRootVars...); ok {
		return r.record(fromEnv(ResourceSDK, v, name))
	}
	if v, ok := r.locator.AndroidSDK(); ok {
		return r.record(Resolution{Resource: ResourceSDK, Value: v, Strategy: StrategyDefaultLocation})
	}
	return r.record(Resolution{Resource: ResourceSDK})
}

// SDKRoot returns the Android SDK root.
func (r *Resolver) SDKRoot() (string, bool) {
	res := r.ResolveSDKRoot()
	return res.Value, res.Found()
}

// ResolvePlatform resolves the canonical platform string for override.
func (r *Resolver) ResolvePlatform(override string) Resolution {
	res := Resolution{Resource: ResourcePlatform}
	v, ok := platformver.Normalize(override, r.env)
	if !ok {
		return res
	}
	res.Value = v
	if override != "" {
		res.Strategy = StrategyArgument
	} else {
		res.Strategy = StrategyEnv
		_, res.Origin, _ = env.FirstValue(r.env, env.PlatformVars...)
	}
	return res
}

// PlatformString returns the canonical platform string, e.g. "android-33-ext4".
func (r *Resolver) PlatformString(override string) (string, bool) {
	res := r.ResolvePlatform(override)
	return res.Value, res.Found()
}

// ResolveAndroidJar resolves android.jar. ANDROID_JAR wins when it exists.
// Otherwise a platform string from platform or the environment selects
// <sdk>/platforms/<platform>/android.jar; with no platform string at all the
// newest installed platform is used.
func (r *Resolver) ResolveAndroidJar(platform string) Resolution {
	if v, name, ok := env.FirstExistingPath(r.env, env.AndroidJar); ok {
		return r.record(fromEnv(ResourceAndroidJar, v, name))
	}

	res := Resolution{Resource: ResourceAndroidJar}
	sdk, ok := r.SDKRoot()
	if !ok {
		return r.record(res)
	}
	platforms := filepath.Join(sdk, "platforms")

	if p := r.ResolvePlatform(platform); p.Found() {
		res.Strategy, res.Origin = StrategyVersioned, p.Origin
		if jar := filepath.Join(platforms, p.Value, "android.jar"); fileutil.PathExists(jar) {
			res.Value = jar
		}
		return r.record(res)
	}

	if latest, ok := versionscan.Latest(platforms, "android.jar", r.log.WithResource(ResourceAndroidJar)); ok {
		res.Strategy = StrategyLatestScan
		res.Value = filepath.Join(platforms, latest, "android.jar")
	}
	return r.record(res)
}

// AndroidJar returns the android.jar for platform, which may be empty.
func (r *Resolver) AndroidJar(platform string) (string, bool) {
	res := r.ResolveAndroidJar(platform)
	return res.Value, res.Found()
}

// ResolveBuildToolsVersion returns override, or ANDROID_BUILD_TOOLS_VERSION.
func (r *Resolver) ResolveBuildToolsVersion(override string) Resolution {
	res := Resolution{Resource: ResourceBuildTools}
	if override != "" {
		res.Value, res.Strategy = override, StrategyArgument
		return res
	}
	if v, name, ok := env.FirstValue(r.env, env.AndroidBuildToolsVersion); ok {
		return fromEnv(ResourceBuildTools, v, name)
	}
	return res
}

// BuildToolsVersion returns the configured build-tools version.
func (r *Resolver) BuildToolsVersion(override string) (string, bool) {
	res := r.ResolveBuildToolsVersion(override)
	return res.Value, res.Found()
}

// ResolveD8Jar resolves d8.jar. ANDROID_D8_JAR wins when it exists.
// Otherwise the build-tools version from buildTools or the environment selects
// <sdk>/build-tools/<version>/lib/d8.jar; with no version the newest installed
// build tools are used.
func (r *Resolver) ResolveD8Jar(buildTools string) Resolution {
	if v, name, ok := env.FirstExistingPath(r.env, env.AndroidD8Jar); ok {
		return r.record(fromEnv(ResourceD8Jar, v, name))
	}

	res := Resolution{Resource: ResourceD8Jar}
	sdk, ok := r.SDKRoot()
	if !ok {
		return r.record(res)
	}
	dir := filepath.Join(sdk, "build-tools")
	marker := filepath.Join("lib", "d8.jar")

	if bt := r.ResolveBuildToolsVersion(buildTools); bt.Found() {
		res.Strategy, res.Origin = StrategyVersioned, bt.Origin
		if jar := filepath.Join(dir, bt.Value, marker); fileutil.PathExists(jar) {
			res.Value = jar
		}
		return r.record(res)
	}

	if latest, ok := versionscan.Latest(dir, "lib/d8.jar", r.log.WithResource(ResourceD8Jar)); ok {
		res.Strategy = StrategyLatestScan
		res.Value = filepath.Join(dir, latest, marker)
	}
	return r.record(res)
}

// D8Jar returns d8.jar for buildTools, which may be empty.
func (r *Resolver) D8Jar(buildTools string) (string, bool) {
	res := r.ResolveD8Jar(buildTools)
	return res.Value, res.Found()
}

// ResolveJavaHome resolves the JDK home: JAVA_HOME when it exists, then the
// platform discovery command.
func (r *Resolver) ResolveJavaHome(ctx context.Context) (Resolution, error) {
	if v, name, ok := env.FirstExistingPath(r.env, env.JavaHome); ok {
		return r.record(fromEnv(ResourceJavaHome, v, name)), nil
	}

	res := Resolution{Resource: ResourceJavaHome, Strategy: StrategyDiscovery}
	home, err := r.locator.JavaHome(ctx)
	if err != nil {
		res.Error = err.Error()
		r.record(res)
		return res, err
	}
	res.Value = home
	return r.record(res), nil
}

// JavaHome returns the JDK home. ("", nil) means none was found; an error
// means the discovery command ran and failed.
func (r *Resolver) JavaHome(ctx context.Context) (string, error) {
	res, err := r.ResolveJavaHome(ctx)
	return res.Value, err
}

// resolveTool resolves <java home>/bin/<tool> and only returns it if it exists.
func (r *Resolver) resolveTool(ctx context.Context, resource, tool string) (Resolution, error) {
	home, err := r.ResolveJavaHome(ctx)
	res := r.toolFrom(home, resource, tool)
	return res, err
}

func (r *Resolver) toolFrom(home Resolution, resource, tool string) Resolution {
	res := Resolution{Resource: resource, Strategy: StrategyDerived, Origin: home.Origin, Error: home.Error}
	if home.Found() {
		if p := pathutil.ToolPath(home.Value, r.goos, tool); fileutil.PathExists(p) {
			res.Value = p
		}
	}
	return r.record(res)
}

// Java returns <java home>/bin/java, with ".exe" on Windows.
func (r *Resolver) Java(ctx context.Context) (string, error) {
	res, err := r.resolveTool(ctx, ResourceJava, "java")
	return res.Value, err
}

// Javac returns <java home>/bin/javac, with ".exe" on Windows.
func (r *Resolver) Javac(ctx context.Context) (string, error) {
	res, err := r.resolveTool(ctx, ResourceJavac, "javac")
	return res.Value, err
}

// JavacMajorVersion runs javac from javaHome and returns its major version.
// The version is 0 whenever an error is returned.
func (r *Resolver) JavacMajorVersion(ctx context.Context, javaHome string) (int, error) {
	major, err := javaversion.Detect(ctx, r.runner, javaHome, r.goos)
	res := Resolution{Resource: ResourceJavacMajor, Strategy: StrategyDetection}
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Value = strconv.Itoa(major)
	}
	r.record(res)
	r.metrics.SetJavacMajorVersion(major)
	return major, err
}

// JavaSourceVersion returns JAVA_SOURCE_VERSION verbatim.
func (r *Resolver) JavaSourceVersion() (string, bool) {
	v, _, ok := env.FirstValue(r.env, env.JavaSourceVersion)
	return v, ok
}

// JavaTargetVersion returns JAVA_TARGET_VERSION verbatim.
func (r *Resolver) JavaTargetVersion() (string, bool) {
	v, _, ok := env.FirstValue(r.env, env.JavaTargetVersion)
	return v, ok
}
