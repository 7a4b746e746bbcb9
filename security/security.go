// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

var (
	// ErrInvalidPath indicates a path contains invalid characters or patterns.
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathTraversal indicates a path traversal attempt.
	ErrPathTraversal = errors.New("path traversal detected")
	// ErrInvalidVersionName indicates a platform or build-tools version that is
	// not a single safe path element.
	ErrInvalidVersionName = errors.New("invalid version name")
	// ErrInsecureFilePermissions indicates a file has insecure (world-writable) permissions.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")

	// versionNamePattern matches names like "33", "android-33-ext4", "34.0.0"
	// and "35.0.0-rc1".
	versionNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,127}$`)
)

// ValidatePath checks if a path is safe to use.
// It rejects parent directory references before and after resolving
// symbolic links.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	cleanPath := filepath.Clean(absPath)

	resolvedPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		// A path that doesn't exist yet is validated structurally.
		if !os.IsNotExist(err) {
			return fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		resolvedPath = cleanPath
	}

	if strings.Contains(resolvedPath, "..") {
		return fmt.Errorf("%w: resolved path contains parent directory reference", ErrPathTraversal)
	}

	return nil
}

// ValidateVersionName validates a platform string or build-tools version that
// will be used as a directory name below the SDK root.
// Empty names are accepted; they mean "not specified".
func ValidateVersionName(name string) error {
	if name == "" {
		return nil
	}

	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains path characters", ErrInvalidVersionName, name)
	}

	if !versionNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must start with a letter or digit and contain only letters, digits, '.', '_' or '-'", ErrInvalidVersionName, name)
	}

	return nil
}

// ValidateFilePermissions checks if a file has secure permissions.
// On Unix systems, it ensures the file is not group- or world-writable.
// On Windows, this check is skipped as Windows uses ACLs differently.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Mode().Perm()&0o022 != 0 {
		return ErrInsecureFilePermissions
	}

	return nil
}
