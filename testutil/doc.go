// Package testutil provides common testing utilities for droidenv packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Scripting subprocess results without real binaries (FakeRunner)
//   - Building fake SDK and JDK trees on disk (WriteFile, MakeDirs)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestJavacVersion(t *testing.T) {
//	    runner := testutil.NewFakeRunner().
//	        On("/jdk/bin/javac -version", cmdutil.Result{Stdout: "javac 17.0.13\n"})
//	    major, err := javaversion.Detect(ctx, runner, "/jdk", "linux")
//	    ...
//	}
package testutil
