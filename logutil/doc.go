// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the diagnostics side channel used by droidenv,
// built on top of slog.
//
// Resolvers return values; everything else they have to say (several JDKs found
// on PATH, a build-tools version picked automatically, a discovery command that
// could not be spawned) goes through this package. Output is written to stderr
// by default and never to stdout, so a caller can capture a resolved path from
// stdout without filtering.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("probing default location", "path", candidate)
//	logutil.Warn("several JDKs found", "count", n)
//
// # Component Loggers
//
//	log := logutil.NewLogger("homeprobe").WithResource("java-home")
//	log.Warn("discovery command not found", "command", "which")
//
// Component loggers follow later SetupLogger calls, so a package-level logger
// created at init time still writes to the writer configured by main.
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set DROIDENV_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"auto-selected latest version","version":"34.0.0"}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="auto-selected latest version" version=34.0.0
package logutil
