// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

// ComponentLogger provides component-scoped structured logging.
// The global logger is looked up on every call, so a ComponentLogger created
// before SetupLogger still honours the final configuration.
type ComponentLogger struct {
	attrs     []any
	component string
}

// NewLogger creates a Logger scoped to a named component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		attrs:     []any{"component", component},
		component: component,
	}
}

func (l *ComponentLogger) with(fields ...any) *ComponentLogger {
	attrs := make([]any, 0, len(l.attrs)+len(fields))
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, fields...)
	return &ComponentLogger{attrs: attrs, component: l.component}
}

// WithResource returns a new Logger with the resource being resolved added,
// e.g. "android-jar" or "java-home".
func (l *ComponentLogger) WithResource(name string) *ComponentLogger {
	return l.with("resource", name)
}

// WithStrategy returns a new Logger with the resolution strategy added,
// e.g. "env", "default-location" or "latest-scan".
func (l *ComponentLogger) WithStrategy(name string) *ComponentLogger {
	return l.with("strategy", name)
}

// WithFields returns a new Logger with additional fields.
// Fields are provided as alternating key-value pairs.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return l.with(fields...)
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

// Debug logs a message at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		Logger().With(l.attrs...).Debug(msg, args...)
	}
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	Logger().With(l.attrs...).Info(msg, args...)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	Logger().With(l.attrs...).Warn(msg, args...)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	Logger().With(l.attrs...).Error(msg, args...)
}
