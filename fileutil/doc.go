// Package fileutil provides the filesystem checks used by the resolvers and the
// atomic writes used by the droidenv CLI.
//
// Existence checks never cache: every call stats the filesystem again, so a
// path confirmed by one resolution is re-checked by the next.
//
// # Existence Checks
//
//   - PathExists: any filesystem entry (file, directory, resolved symlink)
//   - IsDir / IsRegularFile: typed variants
//   - FileExists: a path relative to a directory, such as a marker file
//
// An empty path never exists. This keeps an override variable explicitly set to
// "" indistinguishable from an unset one.
//
// # Atomic Write Operations
//
// AtomicWriteJSON and AtomicWriteFile ensure that files are never left in a partial
// state by writing to a temporary file first, then atomically renaming it to the
// target path. This approach includes:
//
//   - Unique temporary file names to avoid concurrent writer collisions
//   - Explicit sync operations to ensure data is flushed to disk
//   - Retry logic (5 attempts with 20ms backoff) for rename operations
package fileutil
