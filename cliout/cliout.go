package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols and their ASCII fallbacks.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
	ASCIIDot     = "*"
)

var (
	// mu protects the settings below
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !detectColorSupport()
	output       io.Writer
)

// supportsUnicode detects if the terminal supports Unicode
var supportsUnicode = detectUnicodeSupport()

// detectColorSupport reports whether stdout is a terminal that wants colour.
func detectColorSupport() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// detectUnicodeSupport checks if the terminal can display Unicode properly
func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code, ConEmu and PowerShell handle Unicode;
	// the legacy console does not.
	for _, v := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "POWERSHELL_DISTRIBUTION_CHANNEL", "TERM"} {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return os.Getenv("TERM_PROGRAM") == "vscode"
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// SetOutput redirects all output to w. A nil w restores os.Stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	output = w
	mu.Unlock()
}

func out() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	if output == nil {
		return os.Stdout
	}
	return output
}

// color returns code, or nothing when colour is disabled.
func color(code string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return ""
	}
	return code
}

func paint(code, s string) string {
	if c := color(code); c != "" {
		return c + s + Reset
	}
	return s
}

// getIcon returns the appropriate icon based on Unicode support
func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch strings.ToLower(format) {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml", "yml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// IsStructured returns true for the machine-readable formats.
func IsStructured() bool {
	return GetFormat() != FormatDefault
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(out())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(out())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	fmt.Fprintf(out(), format+"\n", args...)
}

// Newline prints a blank line
func Newline() {
	fmt.Fprintln(out())
}

// Header prints a bold header with a divider
func Header(text string) {
	w := out()
	fmt.Fprintf(w, "\n%s\n", paint(Bold, text))
	fmt.Fprintln(w, strings.Repeat("=", len(text)))
}

// Section prints a section header
func Section(text string) {
	fmt.Fprintf(out(), "\n%s\n", paint(Cyan, text))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	fmt.Fprintf(out(), "%s %s\n", paint(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	fmt.Fprintf(out(), "%s %s\n", paint(BrightRed, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	fmt.Fprintf(out(), "%s  %s\n", paint(BrightYellow, getIcon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	fmt.Fprintf(out(), "%s  %s\n", paint(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Item prints an indented item
func Item(format string, args ...any) {
	fmt.Fprintf(out(), "   %s\n", fmt.Sprintf(format, args...))
}

// ItemSuccess prints an indented success item
func ItemSuccess(format string, args ...any) {
	fmt.Fprintf(out(), "   %s %s\n", paint(Green, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// ItemError prints an indented error item
func ItemError(format string, args ...any) {
	fmt.Fprintf(out(), "   %s %s\n", paint(Red, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// ItemWarning prints an indented warning item
func ItemWarning(format string, args ...any) {
	fmt.Fprintf(out(), "   %s  %s\n", paint(Yellow, getIcon(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Hint prints compact hints on a single line with bullet separators.
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	fmt.Fprintln(out(), paint(Dim, strings.Join(hints, " "+getIcon(SymbolDot, ASCIIDot)+" ")))
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Fprintf(out(), "   %s %s\n", paint(Dim, fmt.Sprintf("%-14s", label+":")), value)
}

// Muted returns dim text
func Muted(format string, args ...any) string {
	return paint(Dim, fmt.Sprintf(format, args...))
}

// Status returns a status badge with appropriate color
func Status(status string) string {
	switch strings.ToLower(status) {
	case "found", "ok":
		return paint(BrightGreen, status)
	case "missing", "absent":
		return paint(BrightYellow, status)
	case "error", "failed":
		return paint(BrightRed, status)
	default:
		return status
	}
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}
	w := out()

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	fmt.Fprint(w, "   ")
	for _, header := range headers {
		fmt.Fprintf(w, "%s  ", paint(Bold, fmt.Sprintf("%-*s", widths[header], header)))
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "   ")
	for _, header := range headers {
		fmt.Fprint(w, strings.Repeat("-", widths[header])+"  ")
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		fmt.Fprint(w, "   ")
		for _, header := range headers {
			fmt.Fprintf(w, "%-*s  ", widths[header], row[header])
		}
		fmt.Fprintln(w)
	}
}
