package env

import (
	"strings"
)

// FilterByPrefix returns the entries of vars whose keys start with prefix.
// Matching is case-insensitive; the returned map is always non-nil.
func FilterByPrefix(vars map[string]string, prefix string) map[string]string {
	result := make(map[string]string)
	prefixUpper := strings.ToUpper(prefix)
	for k, v := range vars {
		if strings.HasPrefix(strings.ToUpper(k), prefixUpper) {
			result[k] = v
		}
	}
	return result
}

// WithPrefix returns the set, non-empty variables of e whose names start with
// any of prefixes. An Environment that is not a Lister yields an empty map.
//
// Example:
//
//	toolVars := env.WithPrefix(env.OS(), "ANDROID_", "JAVA_")
func WithPrefix(e Environment, prefixes ...string) map[string]string {
	result := make(map[string]string)
	lister, ok := e.(Lister)
	if !ok {
		return result
	}
	vars := SliceToMap(lister.Environ())
	for _, prefix := range prefixes {
		for k, v := range FilterByPrefix(vars, prefix) {
			if v != "" {
				result[k] = v
			}
		}
	}
	return result
}
