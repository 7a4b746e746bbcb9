// Package shellutil detects the user's shell and formats environment
// variable assignments in its syntax.
//
// # Shell Detection
//
// DetectShell uses, in order:
//  1. The base name of $SHELL on Unix-like systems (bash, zsh, fish, sh, ...)
//  2. PowerShell markers (PSModulePath, POWERSHELL_DISTRIBUTION_CHANNEL) on Windows
//  3. The OS default (cmd on Windows, sh elsewhere)
//
// # Assignments
//
//	line, err := shellutil.ExportLine(shellutil.ShellBash, "JAVA_HOME", "/opt/jdk-17")
//	// export JAVA_HOME='/opt/jdk-17'
//
// Values are quoted so that spaces, quotes and dollar signs survive
// evaluation by the target shell.
package shellutil
