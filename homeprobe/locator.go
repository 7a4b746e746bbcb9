// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package homeprobe

import (
	"context"
	"path/filepath"

	"github.com/jongio/droidenv/cmdutil"
	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/fileutil"
	"github.com/jongio/droidenv/logutil"
)

// Operating system identifiers with a dedicated strategy.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Locator finds platform default locations.
type Locator interface {
	// Platform returns the operating system name the locator was built for.
	Platform() string
	// AndroidSDK returns the default Android SDK root if it exists.
	AndroidSDK() (string, bool)
	// JavaHome runs the platform discovery command and returns the JDK home.
	// ("", nil) means nothing was found.
	JavaHome(ctx context.Context) (string, error)
}

// Deps are the capabilities a Locator reads from. Nil fields get defaults:
// the live process environment, an os/exec runner, the native known-folder
// API and the "homeprobe" logger.
type Deps struct {
	Env     env.Environment
	Runner  cmdutil.Runner
	Folders KnownFolders
	Log     *logutil.ComponentLogger
}

func (d Deps) withDefaults() Deps {
	if d.Env == nil {
		d.Env = env.OS()
	}
	if d.Runner == nil {
		d.Runner = cmdutil.NewExecRunner()
	}
	if d.Folders == nil {
		d.Folders = NativeFolders()
	}
	if d.Log == nil {
		d.Log = logutil.NewLogger("homeprobe")
	}
	return d
}

// discovery describes the command that prints the location of java.
type discovery struct {
	command string
	args    []string
	// resultIsHome is set when the command prints the JDK home rather than bin/java.
	resultIsHome bool
}

// strategy is the per-platform behaviour of a Locator.
type strategy struct {
	sdkDefault func(d Deps) (string, bool)
	discovery  *discovery
}

var (
	macDiscovery     = &discovery{command: "/usr/libexec/java_home", resultIsHome: true}
	windowsDiscovery = &discovery{command: "where", args: []string{"java"}}
	unixDiscovery    = &discovery{command: "which", args: []string{"java"}}
)

// strategyFor returns the strategy for goos.
// android and ios have neither an SDK default nor a discovery command; other
// Unix-like systems only get `which java`.
func strategyFor(goos string) strategy {
	switch goos {
	case osDarwin:
		return strategy{sdkDefault: homeRelative("Library", "Android", "sdk"), discovery: macDiscovery}
	case osLinux:
		return strategy{sdkDefault: homeRelative("Android", "Sdk"), discovery: unixDiscovery}
	case osWindows:
		return strategy{sdkDefault: profileRelative("AppData", "Local", "Android", "Sdk"), discovery: windowsDiscovery}
	case "android", "ios", "js", "wasip1", "plan9":
		return strategy{}
	default:
		return strategy{discovery: unixDiscovery}
	}
}

type locator struct {
	goos     string
	strategy strategy
	deps     Deps
}

// ForPlatform returns the Locator for the operating system goos
// (a runtime.GOOS value).
func ForPlatform(goos string, deps Deps) Locator {
	return &locator{
		goos:     goos,
		strategy: strategyFor(goos),
		deps:     deps.withDefaults(),
	}
}

func (l *locator) Platform() string {
	return l.goos
}

func (l *locator) AndroidSDK() (string, bool) {
	log := l.deps.Log.WithResource("android-sdk")
	if l.strategy.sdkDefault == nil {
		log.Debug("no default Android SDK location on this platform", "os", l.goos)
		return "", false
	}

	candidate, ok := l.strategy.sdkDefault(l.deps)
	if !ok {
		log.Debug("home directory unavailable, skipping default SDK location", "os", l.goos)
		return "", false
	}
	if !fileutil.PathExists(candidate) {
		log.Debug("default Android SDK location does not exist", "path", candidate)
		return "", false
	}
	return candidate, true
}

func (l *locator) JavaHome(ctx context.Context) (string, error) {
	if l.strategy.discovery == nil {
		l.deps.Log.WithResource("java-home").Debug("no JDK discovery command on this platform", "os", l.goos)
		return "", nil
	}
	return discoverJavaHome(ctx, l.deps, l.strategy.discovery)
}

// homeRelative builds a default below $HOME, read from the environment on
// every call.
func homeRelative(elem ...string) func(d Deps) (string, bool) {
	return func(d Deps) (string, bool) {
		home := env.Get(d.Env, env.Home)
		if home == "" {
			return "", false
		}
		return filepath.Join(append([]string{home}, elem...)...), true
	}
}

// profileRelative builds a default below the user profile folder.
func profileRelative(elem ...string) func(d Deps) (string, bool) {
	return func(d Deps) (string, bool) {
		profile, ok := d.Folders.Profile()
		if !ok || profile == "" {
			return "", false
		}
		return filepath.Join(append([]string{profile}, elem...)...), true
	}
}
