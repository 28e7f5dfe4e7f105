// Package metrics exports generation results in the Prometheus text format,
// for node_exporter's textfile collector in CI jobs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.eggybyte.com/scaffold/core/errors"
	"go.eggybyte.com/scaffold/internal/generators"
	"go.eggybyte.com/scaffold/internal/templates"
)

// Collectors holds the gauges describing one generation run.
type Collectors struct {
	registry *prometheus.Registry
	files    *prometheus.GaugeVec
	lastRun  prometheus.Gauge
}

// NewCollectors registers the scaffold gauges on a fresh registry.
func NewCollectors() *Collectors {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collectors{
		registry: reg,
		files: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scaffold_files",
			Help: "Files handled by the last scaffold run, by kind and outcome",
		}, []string{"kind", "outcome"}),
		lastRun: factory.NewGauge(prometheus.GaugeOpts{
			Name: "scaffold_last_run_timestamp_seconds",
			Help: "Unix time the last scaffold run finished",
		}),
	}
}

// Registry returns the underlying registry.
func (c *Collectors) Registry() *prometheus.Registry {
	return c.registry
}

// Observe records the report's counts. Every kind/outcome combination is
// set, including zeros, so series do not disappear between runs.
func (c *Collectors) Observe(report *generators.Report, finished time.Time) {
	for _, kind := range []templates.Kind{templates.KindMain, templates.KindTest} {
		for _, outcome := range generators.Outcomes {
			c.files.WithLabelValues(string(kind), string(outcome)).Set(float64(report.CountKind(kind, outcome)))
		}
	}
	c.lastRun.Set(float64(finished.Unix()))
}

// WriteTextfile writes the report's metrics to path atomically.
func WriteTextfile(path string, report *generators.Report) error {
	c := NewCollectors()
	c.Observe(report, time.Now())

	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.WrapFS("metrics.write_textfile", err)
	}
	return nil
}
