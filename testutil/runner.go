package testutil

import (
	"context"
	"os/exec"
	"strings"
	"sync"

	"github.com/jongio/droidenv/cmdutil"
)

// Call records one invocation of a FakeRunner.
type Call struct {
	Name string
	Args []string
}

// CommandLine returns the call as "name arg1 arg2".
func (c Call) CommandLine() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type fakeResponse struct {
	result cmdutil.Result
	err    error
}

// FakeRunner is a cmdutil.Runner with scripted responses keyed by command line.
// Commands without a response behave like a missing binary.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]fakeResponse
	calls     []Call
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: map[string]fakeResponse{}}
}

// On scripts the result for a command line such as "which java".
func (f *FakeRunner) On(cmdline string, result cmdutil.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = fakeResponse{result: result}
	return f
}

// OnError scripts a spawn failure for a command line.
func (f *FakeRunner) OnError(cmdline string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = fakeResponse{
		result: cmdutil.Result{ExitCode: -1},
		err:    &cmdutil.SpawnError{Name: strings.Fields(cmdline)[0], Err: err},
	}
	return f
}

// Run implements cmdutil.Runner.
func (f *FakeRunner) Run(_ context.Context, name string, args ...string) (cmdutil.Result, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)

	resp, ok := f.responses[call.CommandLine()]
	if !ok {
		return cmdutil.Result{ExitCode: -1}, &cmdutil.SpawnError{Name: name, Err: exec.ErrNotFound}
	}
	return resp.result, resp.err
}

// Calls returns every invocation so far.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
