// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "android.jar")
	require.NoError(t, os.WriteFile(file, []byte("jar"), 0o644))

	assert.True(t, PathExists(dir))
	assert.True(t, PathExists(file))
	assert.False(t, PathExists(filepath.Join(dir, "missing")))
	assert.False(t, PathExists(""), "empty path must never exist")
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "d8.jar")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	assert.True(t, IsRegularFile(file))
	assert.False(t, IsRegularFile(dir))
	assert.False(t, IsRegularFile(""))
}

func TestFileExists_NestedMarker(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "d8.jar"), nil, 0o644))

	assert.True(t, FileExists(dir, "lib/d8.jar"))
	assert.False(t, FileExists(dir, "lib/r8.jar"))
}

func TestPathExists_DanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	if err := os.Symlink(filepath.Join(dir, "nowhere"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	assert.False(t, PathExists(link))
}

func TestAtomicWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")

	data := map[string]string{"sdk": "/opt/android"}
	require.NoError(t, AtomicWriteJSON(path, data))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, data, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should not be left behind")
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	require.NoError(t, AtomicWriteFile(path, []byte("first"), FilePermission))
	require.NoError(t, AtomicWriteFile(path, []byte("second"), FilePermission))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(raw))
}

func TestAtomicWriteFile_MissingDir(t *testing.T) {
	err := AtomicWriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "f"), []byte("x"), FilePermission)
	assert.Error(t, err)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	require.NoError(t, EnsureDir(dir), "existing directory is not an error")
}
