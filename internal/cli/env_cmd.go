// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/jongio/droidenv/cliout"
	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/logutil"
	"github.com/jongio/droidenv/shellutil"
)

func newEnvCmd(a *app) *cobra.Command {
	var (
		shell       string
		passthrough bool
	)
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the resolved toolchain as environment variable assignments",
		Long: `Print every resolved value as an environment variable assignment, so a
shell can pin the toolchain for later build steps:

  eval "$(droidenv env)"

Values that cannot be resolved are left out. With --passthrough, other
ANDROID_* and JAVA_* variables that are already set are carried along.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vars := map[string]string{}
			if v, ok := a.resolver.SDKRoot(); ok {
				vars[env.AndroidHome] = v
			}
			if v, ok := a.resolver.PlatformString(""); ok {
				vars[env.AndroidPlatform] = v
			}
			if v, ok := a.resolver.AndroidJar(""); ok {
				vars[env.AndroidJar] = v
			}
			if v, ok := a.resolver.BuildToolsVersion(""); ok {
				vars[env.AndroidBuildToolsVersion] = v
			}
			if v, ok := a.resolver.D8Jar(""); ok {
				vars[env.AndroidD8Jar] = v
			}
			home, err := a.resolver.JavaHome(cmd.Context())
			switch {
			case err != nil:
				logutil.Warn("leaving out JAVA_HOME", "error", err)
			case home != "":
				vars[env.JavaHome] = home
			}
			if v, ok := a.resolver.JavaSourceVersion(); ok {
				vars[env.JavaSourceVersion] = v
			}
			if v, ok := a.resolver.JavaTargetVersion(); ok {
				vars[env.JavaTargetVersion] = v
			}

			if passthrough {
				for k, v := range env.WithPrefix(a.vars, "ANDROID_", "JAVA_") {
					if _, ok := vars[k]; !ok {
						vars[k] = v
					}
				}
			}

			if cliout.IsStructured() {
				return cliout.Print(vars, nil)
			}

			if shell == "" {
				shell = shellutil.DetectShell(a.goos, a.env)
			}
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				line, err := shellutil.ExportLine(shell, k, vars[k])
				if err != nil {
					return err
				}
				cliout.Plain("%s", line)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shell, "shell", "", "Assignment syntax: sh, bash, zsh, fish, powershell, pwsh or cmd (default: detected)")
	cmd.Flags().BoolVar(&passthrough, "passthrough", false, "Also print other ANDROID_* and JAVA_* variables that are already set")
	return cmd
}
