// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cli implements the droidenv command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/droidenv/cliout"
	"github.com/jongio/droidenv/cmdutil"
	"github.com/jongio/droidenv/env"
	"github.com/jongio/droidenv/logutil"
	"github.com/jongio/droidenv/metrics"
	"github.com/jongio/droidenv/security"
	"github.com/jongio/droidenv/toolchain"
	"github.com/jongio/droidenv/version"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	output      string
	envFile     string
	debug       bool
	logFormat   string
	logLevel    string
	metricsFile string
	timeout     time.Duration
}

// app holds the process-level inputs, replaced in tests.
type app struct {
	env    env.Environment
	runner cmdutil.Runner
	goos   string
	stderr io.Writer

	opts     globalOptions
	vars     env.Environment // env with the --env-file layered underneath
	resolver *toolchain.Resolver
	metrics  *metrics.Recorder
}

func newApp() *app {
	return &app{
		env:    env.OS(),
		runner: cmdutil.NewExecRunner(),
		goos:   runtime.GOOS,
		stderr: os.Stderr,
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "droidenv",
		Short: "Resolve the Android SDK, jars and JDK for builds",
		Long: `droidenv finds the Android SDK, android.jar, d8.jar and the JDK the same
way on every platform: environment overrides first, then the default install
locations, then the newest installed version.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.writeMetrics()
		},
	}

	addGlobalFlags(cmd.PersistentFlags(), &a.opts)

	cmd.AddCommand(
		newSDKCmd(a),
		newAndroidJarCmd(a),
		newD8JarCmd(a),
		newJavaHomeCmd(a),
		newJavaCmd(a),
		newJavacCmd(a),
		newJavacVersionCmd(a),
		newPlatformCmd(a),
		newEnvCmd(a),
		newDoctorCmd(a),
		version.NewCommand(version.New("droidenv")),
	)
	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, opts *globalOptions) {
	fs.StringVarP(&opts.output, "output", "o", "default", "Output format: default, json or yaml")
	fs.StringVar(&opts.envFile, "env-file", "", "KEY=value file layered under the process environment")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging (also "+logutil.EnvDebug+"=true)")
	fs.StringVar(&opts.logFormat, "log-format", "text", "Log format on stderr: text or json")
	fs.StringVar(&opts.logLevel, "log-level", "", "Minimum log level: debug, info, warn or error (overrides --debug)")
	fs.StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for each discovery or javac subprocess (0 disables)")
}

// setup applies the global flags and builds the resolver.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	structured := false
	switch a.opts.logFormat {
	case "text", "":
	case "json":
		structured = true
	default:
		return fmt.Errorf("invalid log format: %s (valid options: text, json)", a.opts.logFormat)
	}
	logutil.SetupLoggerWithWriter(a.stderr, a.opts.debug || logutil.IsDebugEnabled(), structured)
	if a.opts.logLevel != "" {
		logutil.SetLevel(logutil.ParseLevel(a.opts.logLevel))
	}

	if err := cliout.SetFormat(a.opts.output); err != nil {
		return err
	}

	vars := a.env
	if a.opts.envFile != "" {
		fileVars, err := loadEnvFile(a.opts.envFile)
		if err != nil {
			return err
		}
		vars = env.Layered(a.env, env.FromMap(fileVars))
	}

	if a.opts.metricsFile != "" {
		if err := security.ValidatePath(a.opts.metricsFile); err != nil {
			return fmt.Errorf("invalid --metrics-file: %w", err)
		}
		a.metrics = metrics.NewRecorder()
	}

	runner := a.runner
	if a.opts.envFile != "" {
		runner = subprocessRunner(runner, vars)
	}
	a.vars = vars
	a.resolver = toolchain.New(toolchain.Options{
		Env:     vars,
		Runner:  cmdutil.WithTimeout(runner, a.opts.timeout),
		GOOS:    a.goos,
		Metrics: a.metrics,
	})
	return nil
}

// subprocessRunner gives an exec-backed runner the environment e, so values
// from an env-file (PATH included) also reach discovery commands.
func subprocessRunner(r cmdutil.Runner, e env.Environment) cmdutil.Runner {
	er, ok := r.(*cmdutil.ExecRunner)
	if !ok || er.Env != nil {
		return r
	}
	lister, ok := e.(env.Lister)
	if !ok {
		return r
	}
	return &cmdutil.ExecRunner{Env: lister.Environ()}
}

func loadEnvFile(path string) (map[string]string, error) {
	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid --env-file: %w", err)
	}
	if err := security.ValidateFilePermissions(path); err != nil {
		if !errors.Is(err, security.ErrInsecureFilePermissions) {
			return nil, fmt.Errorf("invalid --env-file: %w", err)
		}
		logutil.Warn("env file is writable by other users", "path", path)
	}

	vars, err := env.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	logutil.Debug("loaded env file", "path", path, "vars", len(vars))
	return vars, nil
}

func (a *app) writeMetrics() error {
	if a.metrics == nil {
		return nil
	}
	if err := a.metrics.WriteTextfile(a.opts.metricsFile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
