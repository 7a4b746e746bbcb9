// Package security validates user-supplied paths and version names before
// droidenv reads files or joins them into SDK paths.
//
// # Path Validation
//
// ValidatePath rejects empty paths and any path containing "..", before and
// after it is made absolute and its symlinks are resolved. A path that does
// not exist yet is validated structurally.
//
//	if err := security.ValidatePath(envFile); err != nil {
//	    return fmt.Errorf("invalid --env-file: %w", err)
//	}
//
// # Version Names
//
// Platform strings and build-tools versions become directory names below the
// SDK root. ValidateVersionName keeps them to a single path element:
//
//	security.ValidateVersionName("android-33-ext4") // ok
//	security.ValidateVersionName("../../etc")        // ErrInvalidVersionName
//
// # File Permissions
//
// ValidateFilePermissions reports world- or group-writable files on Unix with
// ErrInsecureFilePermissions. Windows uses ACLs and is not checked.
package security
