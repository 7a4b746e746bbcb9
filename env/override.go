// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"github.com/jongio/droidenv/fileutil"
)

// FirstValue returns the value of the first variable in names that is set and
// non-empty, along with the variable name. Later variables are never consulted
// once one matches.
func FirstValue(e Environment, names ...string) (value string, name string, ok bool) {
	if e == nil {
		return "", "", false
	}
	for _, n := range names {
		if v, set := e.Lookup(n); set && v != "" {
			return v, n, true
		}
	}
	return "", "", false
}

// FirstExistingPath returns the value of the first variable in names that is
// set, non-empty and names an existing filesystem entry.
// A variable pointing at a missing path is skipped and the next one is tried.
func FirstExistingPath(e Environment, names ...string) (path string, name string, ok bool) {
	if e == nil {
		return "", "", false
	}
	for _, n := range names {
		v, set := e.Lookup(n)
		if !set || v == "" {
			continue
		}
		if fileutil.PathExists(v) {
			return v, n, true
		}
	}
	return "", "", false
}

// Snapshot returns the recognized variables that are currently set and
// non-empty in e.
func Snapshot(e Environment) map[string]string {
	result := make(map[string]string)
	for _, name := range Recognized {
		if v := Get(e, name); v != "" {
			result[name] = v
		}
	}
	return result
}
