// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package versionscan picks the newest versioned subdirectory of an SDK
// directory such as platforms/ or build-tools/.
//
// "Newest" is the largest directory name by plain string comparison, not by
// version number: "9" sorts after "30". Callers only scan when no explicit
// version was configured.
package versionscan

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jongio/droidenv/fileutil"
	"github.com/jongio/droidenv/logutil"
)

// Candidates returns the names of the immediate subdirectories of base that
// contain marker (a slash-separated relative path), in ascending string order.
func Candidates(base, marker string) ([]string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if fileutil.FileExists(filepath.Join(base, entry.Name()), marker) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Latest returns the lexicographically largest candidate below base. It
// reports false when base cannot be read or no subdirectory has the marker.
// On success an advisory naming the chosen version is logged to log, or to
// the "versionscan" logger when log is nil.
func Latest(base, marker string, log *logutil.ComponentLogger) (string, bool) {
	if log == nil {
		log = logutil.NewLogger("versionscan")
	}
	log = log.WithStrategy("latest-scan").WithFields("dir", base)

	names, err := Candidates(base, marker)
	if err != nil {
		log.Debug("cannot read version directory", "error", err)
		return "", false
	}
	if len(names) == 0 {
		log.Debug("no version directory contains marker", "marker", marker)
		return "", false
	}

	latest := names[len(names)-1]
	log.Info("no version configured, using latest installed", "version", latest, "installed", len(names))
	return latest, true
}
