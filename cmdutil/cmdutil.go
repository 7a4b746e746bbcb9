// Package cmdutil runs external commands and captures their output.
//
// The Runner interface is the only way droidenv spawns processes: JDK discovery
// (`which java`, `where java`, `/usr/libexec/java_home`) and compiler version
// detection (`javac -version`) both go through it, so tests can substitute a
// scripted runner without touching real binaries.
//
// A command that could not be started yields a *SpawnError. A command that ran
// and exited non-zero is not an error from Run; its Result carries the exit
// code and captured stderr, and Result.Err converts it into an *ExitError when
// the caller wants one.
package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Err returns an *ExitError describing a non-zero exit, or nil on success.
func (r Result) Err(name string, args ...string) error {
	if r.Success() {
		return nil
	}
	return &ExitError{
		Name:     name,
		Args:     args,
		ExitCode: r.ExitCode,
		Stderr:   strings.TrimSpace(r.Stderr),
	}
}

// Runner maps a command and its arguments to captured stdout, stderr and exit status.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args ...string) (Result, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) (Result, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs commands with os/exec.
// The zero value runs with the process environment.
type ExecRunner struct {
	// Env replaces the process environment when non-nil.
	Env []string
}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command to completion and captures stdout and stderr separately.
// There is no built-in timeout; bound ctx when latency matters.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	} else {
		cmd.Env = os.Environ()
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	result.ExitCode = -1
	return result, &SpawnError{Name: name, Err: err}
}

// WithTimeout wraps r so that every command is bounded by d.
// A non-positive d returns r unchanged.
func WithTimeout(r Runner, d time.Duration) Runner {
	if d <= 0 {
		return r
	}
	return RunnerFunc(func(ctx context.Context, name string, args ...string) (Result, error) {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return r.Run(ctx, name, args...)
	})
}

// SpawnError reports a command that could not be started or did not exit
// normally (missing binary, permissions, killed by a signal or context).
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	cmdline := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with status %d", cmdline, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d: %s", cmdline, e.ExitCode, e.Stderr)
}
