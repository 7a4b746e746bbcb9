package version

import (
	"bytes"
	"encoding/json"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/jongio/droidenv/cliout"
)

func TestNew(t *testing.T) {
	info := New("droidenv")
	if info.Name != "droidenv" {
		t.Errorf("expected Name 'droidenv', got %q", info.Name)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected GoVersion %q, got %q", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("unexpected Platform %q", info.Platform)
	}
	if info.Version == "" {
		t.Error("Version must never be empty")
	}
}

func TestFromBuildInfo(t *testing.T) {
	info := &Info{Version: "0.0.0-dev", BuildDate: "unknown", GitCommit: "unknown"}
	info.fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if info.Version != "v1.4.0" || info.GitCommit != "abc123" || info.BuildDate != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected info after build info: %+v", info)
	}
}

func TestFromBuildInfoKeepsLdflags(t *testing.T) {
	info := &Info{Version: "2.0.0", BuildDate: "2026-10-01", GitCommit: "def456"}
	info.fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if info.Version != "2.0.0" || info.GitCommit != "def456" {
		t.Errorf("ldflags values overwritten: %+v", info)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "droidenv",
	}
	got := info.String()
	expected := "droidenv version 1.2.3 (commit: abc123, built: 2024-01-01)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func runCommand(t *testing.T, format string, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	cliout.SetOutput(&buf)
	cliout.NoColor()
	if err := cliout.SetFormat(format); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		cliout.SetOutput(nil)
		_ = cliout.SetFormat("default")
	})

	info := &Info{Name: "droidenv", Version: "1.2.3", BuildDate: "2024-01-01", GitCommit: "abc123"}
	cmd := NewCommand(info)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestNewCommand_HumanReadable(t *testing.T) {
	output := runCommand(t, "default")
	for _, want := range []string{"droidenv Version", "Build Date", "Git Commit", "1.2.3"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestNewCommand_JSON(t *testing.T) {
	output := runCommand(t, "json")

	var parsed Info
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, output)
	}
	if parsed.Version != "1.2.3" || parsed.GitCommit != "abc123" {
		t.Errorf("unexpected JSON: %+v", parsed)
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	if got := strings.TrimSpace(runCommand(t, "default", "--quiet")); got != "1.2.3" {
		t.Errorf("expected '1.2.3', got %q", got)
	}
}
