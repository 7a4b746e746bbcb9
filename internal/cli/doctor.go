// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jongio/droidenv/cliout"
	"github.com/jongio/droidenv/fileutil"
	"github.com/jongio/droidenv/security"
	"github.com/jongio/droidenv/toolchain"
)

func newDoctorCmd(a *app) *cobra.Command {
	var (
		strict bool
		save   string
	)
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Show how every toolchain resource resolves",
		Long: `Resolve everything at once and show where each value came from, which
platforms and build tools are installed, and how to install what is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := a.resolver.Report(cmd.Context())
			if save != "" {
				if err := saveReport(save, rep); err != nil {
					return err
				}
			}
			if err := cliout.Print(rep, func() { printReport(rep) }); err != nil {
				return err
			}

			if missing := rep.Missing(); strict && len(missing) > 0 {
				names := make([]string, len(missing))
				for i, m := range missing {
					names[i] = m.Resource
				}
				return fmt.Errorf("%w: %s", toolchain.ErrNotFound, strings.Join(names, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when a resource is missing")
	cmd.Flags().StringVar(&save, "save", "", "Also write the report as JSON to this file")
	return cmd
}

func saveReport(path string, rep toolchain.Report) error {
	if err := security.ValidatePath(path); err != nil {
		return fmt.Errorf("invalid --save path: %w", err)
	}
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteJSON(path, rep); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

func describe(res toolchain.Resolution) string {
	if !res.Found() {
		return ""
	}
	switch {
	case res.Origin != "":
		return cliout.Muted("(%s, %s)", res.Strategy, res.Origin)
	case res.Strategy != "":
		return cliout.Muted("(%s)", res.Strategy)
	default:
		return ""
	}
}

func printResolutionLine(label string, res toolchain.Resolution) {
	switch {
	case res.Error != "":
		cliout.ItemError("%-12s %s", label, res.Error)
	case res.Found():
		cliout.ItemSuccess("%-12s %s %s", label, res.Value, describe(res))
	default:
		cliout.ItemWarning("%-12s %s", label, cliout.Status("missing"))
	}
}

func printReport(rep toolchain.Report) {
	cliout.Header("droidenv doctor")

	cliout.Section("Android SDK")
	printResolutionLine("SDK", rep.SDK)
	printResolutionLine("platform", rep.Platform)
	printResolutionLine("android.jar", rep.AndroidJar)
	printResolutionLine("build-tools", rep.BuildTools)
	printResolutionLine("d8.jar", rep.D8Jar)
	if len(rep.InstalledPlatforms) > 0 {
		cliout.Item("installed platforms:   %s", strings.Join(rep.InstalledPlatforms, ", "))
	}
	if len(rep.InstalledBuildTools) > 0 {
		cliout.Item("installed build tools: %s", strings.Join(rep.InstalledBuildTools, ", "))
	}

	cliout.Section("Java")
	printResolutionLine("JAVA_HOME", rep.JavaHome)
	printResolutionLine("java", rep.Java)
	printResolutionLine("javac", rep.Javac)
	switch {
	case rep.JavacVersionError != "":
		cliout.ItemError("%-12s %s", "version", rep.JavacVersionError)
	case rep.JavacMajorVersion > 0:
		cliout.ItemSuccess("%-12s %s", "version", strconv.Itoa(rep.JavacMajorVersion))
	}
	if rep.JavaSourceVersion != "" {
		cliout.Label("source", rep.JavaSourceVersion)
	}
	if rep.JavaTargetVersion != "" {
		cliout.Label("target", rep.JavaTargetVersion)
	}
	for _, dir := range rep.JDKInstallDirs {
		cliout.Info("JDK found at %s (set JAVA_HOME to use it)", dir)
	}
	if rep.JavacOnPath != "" {
		cliout.Info("javac found on PATH at %s (set JAVA_HOME to its JDK)", rep.JavacOnPath)
	}

	if len(rep.Environment) > 0 {
		cliout.Section("Environment")
		keys := make([]string, 0, len(rep.Environment))
		for k := range rep.Environment {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([]cliout.TableRow, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, cliout.TableRow{"Variable": k, "Value": rep.Environment[k]})
		}
		cliout.Table([]string{"Variable", "Value"}, rows)
	}

	missing := rep.Missing()
	if len(missing) == 0 {
		cliout.Newline()
		cliout.Success("Toolchain complete")
		return
	}
	cliout.Newline()
	cliout.Error("%d required resources missing", len(missing))
	for _, m := range missing {
		cliout.Warning("%v", toolchain.NotFound(m.Resource))
	}
	cliout.Hint("run with --debug to see each strategy tried", "set variables in an --env-file to pin them")
}
