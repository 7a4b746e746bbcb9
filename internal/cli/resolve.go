// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/droidenv/cliout"
	"github.com/jongio/droidenv/security"
	"github.com/jongio/droidenv/toolchain"
)

// printResolution prints the value alone in the default format and the whole
// resolution otherwise. A missing value is an error: these commands exist to
// feed the value to a build.
func printResolution(res toolchain.Resolution) error {
	if !res.Found() {
		if res.Error != "" {
			return fmt.Errorf("%s: %s", res.Resource, res.Error)
		}
		return toolchain.NotFound(res.Resource)
	}
	return cliout.Print(res, func() { cliout.Plain("%s", res.Value) })
}

func newSDKCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sdk",
		Short: "Print the Android SDK root",
		Long:  "Print the Android SDK root from ANDROID_HOME, ANDROID_SDK_ROOT or the platform default location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResolution(a.resolver.ResolveSDKRoot())
		},
	}
}

func newAndroidJarCmd(a *app) *cobra.Command {
	var platform string
	cmd := &cobra.Command{
		Use:   "android-jar",
		Short: "Print the path of android.jar",
		Long: `Print the path of android.jar.

ANDROID_JAR wins when it names an existing file. Otherwise the platform from
--platform, ANDROID_PLATFORM, ANDROID_API_LEVEL or ANDROID_SDK_VERSION (plus
ANDROID_SDK_EXTENSION) selects a platform in the SDK. Without any platform the
newest installed one is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := security.ValidateVersionName(platform); err != nil {
				return err
			}
			return printResolution(a.resolver.ResolveAndroidJar(platform))
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "", `Platform, e.g. "33" or "android-33-ext4"`)
	return cmd
}

func newD8JarCmd(a *app) *cobra.Command {
	var buildTools string
	cmd := &cobra.Command{
		Use:   "d8-jar",
		Short: "Print the path of d8.jar",
		Long: `Print the path of d8.jar.

ANDROID_D8_JAR wins when it names an existing file. Otherwise the build-tools
version from --build-tools or ANDROID_BUILD_TOOLS_VERSION selects the build
tools in the SDK. Without a version the newest installed build tools are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := security.ValidateVersionName(buildTools); err != nil {
				return err
			}
			return printResolution(a.resolver.ResolveD8Jar(buildTools))
		},
	}
	cmd.Flags().StringVarP(&buildTools, "build-tools", "b", "", `Build-tools version, e.g. "34.0.0"`)
	return cmd
}

func newJavaHomeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "java-home",
		Short: "Print the JDK home",
		Long:  "Print the JDK home from JAVA_HOME or the platform JDK discovery command.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.resolver.ResolveJavaHome(cmd.Context())
			if err != nil {
				return err
			}
			return printResolution(res)
		},
	}
}

func newJavaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "java",
		Short: "Print the path of the java launcher in the JDK home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolver.Java(cmd.Context())
			if err != nil {
				return err
			}
			return printResolution(toolchain.Resolution{Resource: toolchain.ResourceJava, Value: p, Strategy: toolchain.StrategyDerived})
		},
	}
}

func newJavacCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "javac",
		Short: "Print the path of javac in the JDK home",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.resolver.Javac(cmd.Context())
			if err != nil {
				return err
			}
			return printResolution(toolchain.Resolution{Resource: toolchain.ResourceJavac, Value: p, Strategy: toolchain.StrategyDerived})
		},
	}
}

func newJavacVersionCmd(a *app) *cobra.Command {
	var javaHome string
	cmd := &cobra.Command{
		Use:   "javac-version",
		Short: "Print the major version of javac",
		Long:  "Run javac -version from the JDK home (--java-home or the resolved one) and print its major version, e.g. 8 or 17.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home := javaHome
			if home == "" {
				var err error
				if home, err = a.resolver.JavaHome(cmd.Context()); err != nil {
					return err
				}
				if home == "" {
					return toolchain.NotFound(toolchain.ResourceJavaHome)
				}
			} else if err := security.ValidatePath(home); err != nil {
				return fmt.Errorf("invalid --java-home: %w", err)
			}

			major, err := a.resolver.JavacMajorVersion(cmd.Context(), home)
			if err != nil {
				return err
			}
			data := struct {
				JavaHome string `json:"javaHome" yaml:"javaHome"`
				Major    int    `json:"major" yaml:"major"`
			}{JavaHome: home, Major: major}
			return cliout.Print(data, func() { cliout.Plain("%s", strconv.Itoa(major)) })
		},
	}
	cmd.Flags().StringVar(&javaHome, "java-home", "", "JDK home to query instead of the resolved one")
	return cmd
}
