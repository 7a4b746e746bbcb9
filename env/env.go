// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package env

import (
	"fmt"
	"os"
	"strings"
)

// Environment is a read-only view of environment variables.
type Environment interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
}

// Lister is implemented by environments that can enumerate their variables
// as KEY=VALUE entries.
type Lister interface {
	Environ() []string
}

type osEnvironment struct{}

func (osEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (osEnvironment) Environ() []string {
	return os.Environ()
}

// OS returns an Environment backed by the live process environment.
// Every Lookup reads the current value; nothing is captured up front.
func OS() Environment {
	return osEnvironment{}
}

// Map is an Environment backed by a fixed map.
type Map map[string]string

// Lookup implements Environment.
func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Environ implements Lister.
func (m Map) Environ() []string {
	return MapToSlice(m)
}

// FromMap returns an Environment holding a copy of vars.
func FromMap(vars map[string]string) Environment {
	m := make(Map, len(vars))
	for k, v := range vars {
		m[k] = v
	}
	return m
}

// FromSlice returns an Environment built from KEY=VALUE entries, such as os.Environ().
// Malformed entries are skipped.
func FromSlice(entries []string) Environment {
	return Map(SliceToMap(entries))
}

type layered []Environment

func (l layered) Lookup(key string) (string, bool) {
	var (
		found bool
		value string
	)
	for _, e := range l {
		if e == nil {
			continue
		}
		v, ok := e.Lookup(key)
		if !ok {
			continue
		}
		if v != "" {
			return v, true
		}
		found = true
		value = v
	}
	return value, found
}

// Environ merges the layers that implement Lister, honouring the same
// precedence as Lookup.
func (l layered) Environ() []string {
	merged := map[string]string{}
	for i := len(l) - 1; i >= 0; i-- {
		lister, ok := l[i].(Lister)
		if !ok {
			continue
		}
		for k, v := range SliceToMap(lister.Environ()) {
			if v != "" || merged[k] == "" {
				merged[k] = v
			}
		}
	}
	return MapToSlice(merged)
}

// Layered combines environments in priority order. The first layer holding a
// non-empty value for a key wins; an empty value in a higher layer does not
// hide a non-empty value below it.
func Layered(envs ...Environment) Environment {
	return layered(envs)
}

// Get returns the value of key, or "" when it is unset.
func Get(e Environment, key string) string {
	if e == nil {
		return ""
	}
	v, _ := e.Lookup(key)
	return v
}

// MapToSlice converts an env map into KEY=VALUE entries.
func MapToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed rows.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		parts := strings.SplitN(envVar, "=", 2)
		if len(parts) != 2 {
			continue
		}
		result[parts[0]] = parts[1]
	}
	return result
}
