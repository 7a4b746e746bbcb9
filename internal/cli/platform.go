// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jongio/droidenv/cliout"
	"github.com/jongio/droidenv/logutil"
	"github.com/jongio/droidenv/platformver"
	"github.com/jongio/droidenv/security"
	"github.com/jongio/droidenv/toolchain"
)

type platformOutput struct {
	toolchain.Resolution `yaml:",inline"`
	Parsed               *platformver.Platform `json:"parsed,omitempty" yaml:"parsed,omitempty"`
}

func newPlatformCmd(a *app) *cobra.Command {
	var (
		platform string
		verbose  bool
	)
	cmd := &cobra.Command{
		Use:   "platform",
		Short: "Print the canonical platform string",
		Long: `Print the canonical platform string, e.g. "android-33-ext4", built from
--platform or ANDROID_PLATFORM, ANDROID_API_LEVEL, ANDROID_SDK_VERSION and
ANDROID_SDK_EXTENSION. Nothing is looked up on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := security.ValidateVersionName(platform); err != nil {
				return err
			}
			res := a.resolver.ResolvePlatform(platform)
			if !res.Found() {
				return toolchain.NotFound(toolchain.ResourcePlatform)
			}
			out := platformOutput{Resolution: res}
			if parsed, err := platformver.Parse(res.Value); err == nil {
				out.Parsed = &parsed
			} else {
				logutil.Debug("platform string has no API level or extension breakdown", "platform", res.Value, "error", err)
			}

			return cliout.Print(out, func() {
				if !verbose {
					cliout.Plain("%s", res.Value)
					return
				}
				cliout.Label("Platform", res.Value)
				if out.Parsed != nil {
					cliout.Label("API level", out.Parsed.API)
					if out.Parsed.Extension > 0 {
						cliout.Label("Extension", strconv.Itoa(out.Parsed.Extension))
					}
				}
				if res.Origin != "" {
					cliout.Label("From", res.Origin)
				}
			})
		},
	}
	cmd.Flags().StringVarP(&platform, "platform", "p", "", `Platform override, e.g. "33"`)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the API level, extension and source")
	return cmd
}
