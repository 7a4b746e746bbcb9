// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package shellutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jongio/droidenv/env"
)

// Shell identifiers.
const (
	// ShellBash is the Bourne Again Shell.
	ShellBash = "bash"

	// ShellCmd is the Windows Command Prompt.
	ShellCmd = "cmd"

	// ShellFish is the friendly interactive shell.
	ShellFish = "fish"

	// ShellPowerShell is Windows PowerShell (5.1 and earlier).
	ShellPowerShell = "powershell"

	// ShellPwsh is PowerShell Core (6.0+, cross-platform).
	ShellPwsh = "pwsh"

	// ShellSh is the POSIX shell.
	ShellSh = "sh"

	// ShellZsh is the Z Shell.
	ShellZsh = "zsh"
)

// Operating system identifiers.
const (
	// osWindows identifies the Windows operating system.
	osWindows = "windows"
)

// DetectShell returns the shell the user is most likely running on goos.
// A $SHELL that ExportLine cannot format for, such as tcsh, yields ShellSh.
func DetectShell(goos string, e env.Environment) string {
	if goos == osWindows {
		if env.Get(e, "POWERSHELL_DISTRIBUTION_CHANNEL") != "" {
			return ShellPwsh
		}
		if env.Get(e, "PSModulePath") != "" {
			return ShellPowerShell
		}
		return ShellCmd
	}

	if shell := env.Get(e, "SHELL"); shell != "" {
		if name := strings.TrimSuffix(filepath.Base(filepath.ToSlash(shell)), ".exe"); IsSupported(name) {
			return name
		}
	}
	return ShellSh
}

// IsSupported reports whether ExportLine can format assignments for shell.
func IsSupported(shell string) bool {
	switch shell {
	case ShellSh, ShellBash, ShellZsh, "ksh", "dash", "ash",
		ShellFish, ShellPowerShell, ShellPwsh, ShellCmd:
		return true
	}
	return false
}

// ExportLine formats an assignment of value to key that, when evaluated by
// shell, sets an exported environment variable.
func ExportLine(shell, key, value string) (string, error) {
	switch shell {
	case ShellSh, ShellBash, ShellZsh, "ksh", "dash", "ash":
		return fmt.Sprintf("export %s='%s'", key, strings.ReplaceAll(value, "'", `'\''`)), nil
	case ShellFish:
		return fmt.Sprintf("set -gx %s '%s'", key, strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(value)), nil
	case ShellPowerShell, ShellPwsh:
		return fmt.Sprintf("$env:%s = '%s'", key, strings.ReplaceAll(value, "'", "''")), nil
	case ShellCmd:
		return fmt.Sprintf("set \"%s=%s\"", key, value), nil
	default:
		return "", fmt.Errorf("unsupported shell: %s (valid options: sh, bash, zsh, fish, powershell, pwsh, cmd)", shell)
	}
}
