// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package toolchain

import (
	"context"
	"path/filepath"

	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/pathutil"
	"github.com/jongio/droidenv/versionscan"
)

// Report is a snapshot of every resolution, for display.
type Report struct {
	GOOS        string            `json:"goos" yaml:"goos"`
	Environment map[string]string `json:"environment" yaml:"environment"`

	SDK        Resolution `json:"sdk" yaml:"sdk"`
	Platform   Resolution `json:"platform" yaml:"platform"`
	AndroidJar Resolution `json:"androidJar" yaml:"androidJar"`
	BuildTools Resolution `json:"buildTools" yaml:"buildTools"`
	D8Jar      Resolution `json:"d8Jar" yaml:"d8Jar"`
	JavaHome   Resolution `json:"javaHome" yaml:"javaHome"`
	Java       Resolution `json:"java" yaml:"java"`
	Javac      Resolution `json:"javac" yaml:"javac"`

	JavacMajorVersion int    `json:"javacMajorVersion,omitempty" yaml:"javacMajorVersion,omitempty"`
	JavacVersionError string `json:"javacVersionError,omitempty" yaml:"javacVersionError,omitempty"`
	JavaSourceVersion string `json:"javaSourceVersion,omitempty" yaml:"javaSourceVersion,omitempty"`
	JavaTargetVersion string `json:"javaTargetVersion,omitempty" yaml:"javaTargetVersion,omitempty"`

	InstalledPlatforms  []string `json:"installedPlatforms,omitempty" yaml:"installedPlatforms,omitempty"`
	InstalledBuildTools []string `json:"installedBuildTools,omitempty" yaml:"installedBuildTools,omitempty"`
	JDKInstallDirs      []string `json:"jdkInstallDirs,omitempty" yaml:"jdkInstallDirs,omitempty"`
	JavacOnPath         string   `json:"javacOnPath,omitempty" yaml:"javacOnPath,omitempty"`
}

// Report resolves everything once. JDK discovery runs at most once and javac
// is only queried when it was found.
func (r *Resolver) Report(ctx context.Context) Report {
	rep := Report{
		GOOS:        r.goos,
		Environment: env.Snapshot(r.env),
		SDK:         r.ResolveSDKRoot(),
		Platform:    r.ResolvePlatform(""),
		AndroidJar:  r.ResolveAndroidJar(""),
		BuildTools:  r.ResolveBuildToolsVersion(""),
		D8Jar:       r.ResolveD8Jar(""),
	}
	rep.JavaSourceVersion, _ = r.JavaSourceVersion()
	rep.JavaTargetVersion, _ = r.JavaTargetVersion()

	if rep.SDK.Found() {
		rep.InstalledPlatforms, _ = versionscan.Candidates(filepath.Join(rep.SDK.Value, "platforms"), "android.jar")
		rep.InstalledBuildTools, _ = versionscan.Candidates(filepath.Join(rep.SDK.Value, "build-tools"), "lib/d8.jar")
	}

	rep.JavaHome, _ = r.ResolveJavaHome(ctx)
	rep.Java = r.toolFrom(rep.JavaHome, ResourceJava, "java")
	rep.Javac = r.toolFrom(rep.JavaHome, ResourceJavac, "javac")
	if rep.Javac.Found() {
		major, err := r.JavacMajorVersion(ctx, rep.JavaHome.Value)
		if err != nil {
			rep.JavacVersionError = err.Error()
		}
		rep.JavacMajorVersion = major
	} else {
		rep.JDKInstallDirs = pathutil.SearchJDKInstallDirs(r.goos, r.env)
		rep.JavacOnPath = pathutil.FindToolInPath(r.goos, "javac", r.env)
	}
	return rep
}

// Missing returns the resolutions a typical Android build needs that were
// not found.
func (rep Report) Missing() []Resolution {
	var missing []Resolution
	for _, res := range []Resolution{rep.SDK, rep.AndroidJar, rep.D8Jar, rep.JavaHome, rep.Javac} {
		if !res.Found() {
			missing = append(missing, res)
		}
	}
	return missing
}
