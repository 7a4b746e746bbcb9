// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package homeprobe

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jongio/droidenv/fileutil"
)

// maxSymlinkHops bounds symlink chains, matching the Linux MAXSYMLINKS limit.
const maxSymlinkHops = 40

// ErrSymlinkLoop is returned when a symlink chain exceeds the hop limit.
var ErrSymlinkLoop = errors.New("too many levels of symbolic links")

func discoverJavaHome(ctx context.Context, deps Deps, d *discovery) (string, error) {
	log := deps.Log.WithResource("java-home").WithFields("command", d.command)

	res, err := deps.Runner.Run(ctx, d.command, d.args...)
	if err != nil {
		log.Warn("JDK discovery command could not be run", "error", err)
		return "", nil
	}
	if !res.Success() {
		return "", fmt.Errorf("JDK discovery failed: %w", res.Err(d.command, d.args...))
	}

	found := lastCandidate(res.Stdout, func(all []string) {
		log.Warn(fmt.Sprintf("using the last of %d discovered Java locations", len(all)),
			"candidates", strings.Join(all, ", "))
	})
	if found == "" {
		log.Warn("Java is not installed, or is missing from the system PATH")
		return "", nil
	}

	resolved, err := ResolveSymlinks(found)
	if err != nil {
		log.Warn("could not resolve discovered Java location", "path", found, "error", err)
		return "", nil
	}

	home := resolved
	if !d.resultIsHome {
		home = StripBinJava(resolved)
	}
	if !fileutil.PathExists(home) {
		log.Warn("discovered JDK home does not exist", "path", home)
		return "", nil
	}

	log.Debug("discovered JDK home", "path", home)
	return home, nil
}

// lastCandidate returns the last non-blank line of output. When there is more
// than one, onMany receives every candidate.
func lastCandidate(output string, onMany func(all []string)) string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	if len(lines) > 1 && onMany != nil {
		onMany(lines)
	}
	return lines[len(lines)-1]
}

// ResolveSymlinks follows path through a chain of symlinks until it reaches
// something that is not a link. A relative link target is interpreted relative
// to the directory containing the link being followed.
// Only the final path element is followed at each step; parent directories are
// left as they are.
func ResolveSymlinks(path string) (string, error) {
	for hops := 0; hops < maxSymlinkHops; hops++ {
		target, err := os.Readlink(path)
		if err != nil {
			return path, nil
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("%w: %s", ErrSymlinkLoop, path)
}

// StripBinJava removes the last two path segments, turning <home>/bin/java
// into <home>.
func StripBinJava(javaPath string) string {
	return filepath.Dir(filepath.Dir(javaPath))
}
