// Package observability exposes Prometheus metrics for injection runs.
package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// RunCollector holds the metrics recorded while injecting sources.
type RunCollector struct {
	gatherer prometheus.Gatherer

	RecordsInjected    prometheus.Counter
	RecordsRejected    prometheus.Counter
	ResolutionWarnings prometheus.Counter
	NyquistWarnings    prometheus.Counter
	GenerationSamples  prometheus.Histogram
}

// NewRunCollector registers run metrics against the provided registerer.
// A nil registerer selects a fresh private registry, so batch runs never
// leak into the process-wide default.
func NewRunCollector(reg prometheus.Registerer) (*RunCollector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	injected, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cw_records_injected_total",
		Help: "Source records whose waveform was added to the output series.",
	}), "cw_records_injected_total")
	if err != nil {
		return nil, err
	}

	rejected, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cw_records_rejected_total",
		Help: "Malformed source lines that ended the read loop.",
	}), "cw_records_rejected_total")
	if err != nil {
		return nil, err
	}

	warnings, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cw_resolution_warnings_total",
		Help: "Generated waveforms whose maximum df*dt exceeded the interpolation limit.",
	}), "cw_resolution_warnings_total")
	if err != nil {
		return nil, err
	}

	nyquist, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cw_nyquist_warnings_total",
		Help: "Generated waveforms reaching the Nyquist frequency of the output series.",
	}), "cw_nyquist_warnings_total")
	if err != nil {
		return nil, err
	}

	samples, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cw_generation_samples",
		Help:    "Number of intermediate waveform samples generated per source.",
		Buckets: prometheus.ExponentialBuckets(2, 4, 12),
	}), "cw_generation_samples")
	if err != nil {
		return nil, err
	}

	return &RunCollector{
		gatherer:           gatherer,
		RecordsInjected:    injected,
		RecordsRejected:    rejected,
		ResolutionWarnings: warnings,
		NyquistWarnings:    nyquist,
		GenerationSamples:  samples,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *RunCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// IncInjected counts one injected source.
func (c *RunCollector) IncInjected() {
	if c == nil || c.RecordsInjected == nil {
		return
	}
	c.RecordsInjected.Inc()
}

// IncRejected counts one malformed source line.
func (c *RunCollector) IncRejected() {
	if c == nil || c.RecordsRejected == nil {
		return
	}
	c.RecordsRejected.Inc()
}

// IncResolutionWarning counts one df*dt advisory.
func (c *RunCollector) IncResolutionWarning() {
	if c == nil || c.ResolutionWarnings == nil {
		return
	}
	c.ResolutionWarnings.Inc()
}

// IncNyquistWarning counts one waveform at or above the output Nyquist frequency.
func (c *RunCollector) IncNyquistWarning() {
	if c == nil || c.NyquistWarnings == nil {
		return
	}
	c.NyquistWarnings.Inc()
}

// ObserveGenerationSamples records the generation length chosen for a source.
func (c *RunCollector) ObserveGenerationSamples(n int) {
	if c == nil || c.GenerationSamples == nil {
		return
	}
	c.GenerationSamples.Observe(float64(n))
}

// WriteTextfile writes all gathered metrics to path in the Prometheus text
// exposition format, for pickup by a node exporter textfile collector.
func (c *RunCollector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("observability: write metrics %s: %w", path, err)
	}
	return nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
