// Package cliout formats droidenv command output.
//
// Resolved values go to stdout so they can be captured by scripts:
//
//	ANDROID_JAR=$(droidenv android-jar)
//
// The default format prints the bare value for single-value commands and a
// styled listing for reports. The json and yaml formats print the full
// resolution object instead.
//
// # Formats
//
//	if err := cliout.SetFormat("yaml"); err != nil {
//	    return err
//	}
//	return cliout.Print(report, func() { printReport(report) })
//
// # Colour
//
// ANSI colours are used only when stdout is a terminal and NO_COLOR is not
// set. NoColor and ForceColor override detection. Legacy Windows consoles get
// ASCII symbols instead of Unicode ones.
package cliout
