// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platformver

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jongio/droidenv/env"
)

const (
	// Prefix starts every canonical platform string.
	Prefix = "android-"
	// extMarker separates the API level from the SDK extension number.
	extMarker = "-ext"
)

// Normalize returns the canonical platform string for override, falling back
// to the platform variables in e. It reports false when no base is set; there
// is no filesystem fallback here.
func Normalize(override string, e env.Environment) (string, bool) {
	base := override
	if base == "" {
		base, _, _ = env.FirstValue(e, env.PlatformVars...)
	}
	if base == "" {
		return "", false
	}
	return Build(base, env.Get(e, env.AndroidSDKExtension)), true
}

// Build prefixes base with "android-" when needed and appends ext as
// "-ext<N>" unless base already carries an extension. ext may be "4", "ext4"
// or "-ext4"; anything that does not reduce to digits is ignored.
func Build(base, ext string) string {
	if !strings.HasPrefix(base, Prefix) {
		base = Prefix + base
	}
	if strings.Contains(base, extMarker) {
		return base
	}
	if n, ok := extensionDigits(ext); ok {
		return base + extMarker + n
	}
	return base
}

func extensionDigits(ext string) (string, bool) {
	ext = strings.TrimPrefix(ext, "-")
	ext = strings.TrimPrefix(ext, "ext")
	if ext == "" {
		return "", false
	}
	for _, r := range ext {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return ext, true
}

// Platform is a parsed platform string.
type Platform struct {
	// API is the API level or preview codename, e.g. "33".
	API string `json:"api" yaml:"api"`
	// Extension is the SDK extension number, 0 when absent.
	Extension int `json:"extension,omitempty" yaml:"extension,omitempty"`
}

// String returns the canonical form.
func (p Platform) String() string {
	if p.Extension > 0 {
		return Prefix + p.API + extMarker + strconv.Itoa(p.Extension)
	}
	return Prefix + p.API
}

// Parse splits a platform string, with or without the "android-" prefix, into
// its API level and extension number.
func Parse(platform string) (Platform, error) {
	rest := strings.TrimPrefix(platform, Prefix)
	api, ext, hasExt := strings.Cut(rest, extMarker)
	if api == "" {
		return Platform{}, fmt.Errorf("invalid platform %q: missing API level", platform)
	}

	p := Platform{API: api}
	if hasExt {
		digits, ok := extensionDigits(ext)
		if !ok {
			return Platform{}, fmt.Errorf("invalid platform %q: extension %q is not a number", platform, ext)
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return Platform{}, fmt.Errorf("invalid platform %q: %w", platform, err)
		}
		p.Extension = n
	}
	return p, nil
}
