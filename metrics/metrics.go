// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package metrics records resolution outcomes and subprocess timings in a
// Prometheus registry that can be written out as a node-exporter textfile.
package metrics

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jongio/droidenv/cmdutil"
)

// Resolution outcomes.
const (
	OutcomeFound  = "found"
	OutcomeAbsent = "absent"
	OutcomeError  = "error"
)

// Recorder owns a private registry. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	registry *prometheus.Registry

	resolutions        *prometheus.CounterVec
	subprocessDuration *prometheus.HistogramVec
	subprocessErrors   *prometheus.CounterVec
	javacMajor         prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "droidenv_resolution_total",
				Help: "Total number of toolchain resolutions by resource, winning strategy and outcome",
			},
			[]string{"resource", "strategy", "outcome"},
		),
		subprocessDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "droidenv_subprocess_duration_seconds",
				Help:    "Duration of discovery and version-detection subprocesses in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"command", "status"},
		),
		subprocessErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "droidenv_subprocess_errors_total",
				Help: "Total number of subprocesses that could not be run or exited non-zero",
			},
			[]string{"command", "error_type"},
		),
		javacMajor: factory.NewGauge(prometheus.GaugeOpts{
			Name: "droidenv_javac_major_version",
			Help: "Major version of the last detected javac, 0 when detection failed",
		}),
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// RecordResolution counts one resolution of resource. strategy is one of the
// toolchain strategy names ("env", "argument", "default-location",
// "versioned", "latest-scan", "discovery", "derived", "detection") and is
// "none" when nothing produced a value.
func (r *Recorder) RecordResolution(resource, strategy, outcome string) {
	if r == nil {
		return
	}
	if strategy == "" {
		strategy = "none"
	}
	r.resolutions.With(prometheus.Labels{
		"resource": resource,
		"strategy": strategy,
		"outcome":  outcome,
	}).Inc()
}

// SetJavacMajorVersion records the last detected javac major version.
func (r *Recorder) SetJavacMajorVersion(major int) {
	if r == nil {
		return
	}
	r.javacMajor.Set(float64(major))
}

// InstrumentRunner wraps next so every command it runs is timed and its
// failures counted. A nil Recorder returns next unchanged.
func (r *Recorder) InstrumentRunner(next cmdutil.Runner) cmdutil.Runner {
	if r == nil {
		return next
	}
	return cmdutil.RunnerFunc(func(ctx context.Context, name string, args ...string) (cmdutil.Result, error) {
		start := time.Now()
		res, err := next.Run(ctx, name, args...)
		command := commandLabel(name)

		status := "success"
		switch {
		case err != nil:
			status = "error"
			r.subprocessErrors.With(prometheus.Labels{"command": command, "error_type": errorType(err)}).Inc()
		case !res.Success():
			status = "exit_error"
			r.subprocessErrors.With(prometheus.Labels{"command": command, "error_type": "exit"}).Inc()
		}

		r.subprocessDuration.With(prometheus.Labels{"command": command, "status": status}).
			Observe(time.Since(start).Seconds())
		return res, err
	})
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

// commandLabel keeps label cardinality low: /opt/jdk/bin/javac.exe -> javac.
func commandLabel(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	return strings.TrimSuffix(strings.ToLower(base), ".exe")
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "spawn"
	}
}
