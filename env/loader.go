package env

import (
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a KEY=value env file.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is validated by caller
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return ParseKeyValueFormat(data)
}

// ParseKeyValueFormat parses output in "KEY=value" format (one per line).
// Handles quoted values and skips empty lines and comments.
// A leading "export " on a line is ignored.
func ParseKeyValueFormat(output []byte) (map[string]string, error) {
	values := make(map[string]string)
	lines := strings.Split(string(output), "\n")

	for _, line := range lines {
		line = strings.TrimSpace(line)

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		idx := strings.Index(line, "=")
		if idx <= 0 {
			// No '=' or '=' at start
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := line[idx+1:]
		if key == "" {
			continue
		}

		// Remove surrounding quotes if present (handles both " and ')
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, nil
}
