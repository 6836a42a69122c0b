package inject

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-cw/cw/generate"
	"github.com/cwbudde/algo-cw/cw/series"
	"github.com/cwbudde/algo-cw/cw/source"
	"github.com/cwbudde/algo-cw/cw/taylor"
	"github.com/cwbudde/algo-cw/internal/core"
	"github.com/cwbudde/algo-cw/internal/logging"
	"github.com/cwbudde/algo-cw/internal/observability"
)

// Synthesizer generates sampled waveforms.
type Synthesizer interface {
	Generate(p generate.Params) (*generate.Waveform, error)
}

// ResponseSimulator renders a waveform onto the grid of dst.
type ResponseSimulator interface {
	Simulate(dst *series.Series, w *generate.Waveform) error
}

// Injector drives the per-record injection pipeline.
type Injector struct {
	synth   Synthesizer
	sim     ResponseSimulator
	padding int64
	log     logging.Logger
	metrics *observability.RunCollector

	contrib *series.Series
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the logger used for warnings and progress.
func WithLogger(l logging.Logger) Option {
	return func(inj *Injector) {
		if l != nil {
			inj.log = l
		}
	}
}

// WithMetrics records run counters into c.
func WithMetrics(c *observability.RunCollector) Option {
	return func(inj *Injector) {
		inj.metrics = c
	}
}

// WithPadding extends the generation span by ns nanoseconds on each side of
// the output, e.g. to cover the light travel time across the Earth orbit.
func WithPadding(ns int64) Option {
	return func(inj *Injector) {
		if ns > 0 {
			inj.padding = ns
		}
	}
}

// New returns an Injector that generates with synth and renders with sim.
func New(synth Synthesizer, sim ResponseSimulator, opts ...Option) (*Injector, error) {
	if synth == nil || sim == nil {
		return nil, errors.New("inject: synthesizer and simulator are required")
	}

	inj := &Injector{
		synth: synth,
		sim:   sim,
		log:   logging.Noop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(inj)
		}
	}
	return inj, nil
}

// Span returns the generation interval [start, stop] in GPS nanoseconds for
// output series out: one second before its first sample up to the whole
// second past its end, widened by the configured padding.
func (inj *Injector) Span(out *series.Series) (start, stop int64) {
	start = out.Epoch - core.NanosPerSecond - inj.padding
	stop = out.Epoch + core.NanosPerSecond*int64(out.Duration()+1) + inj.padding
	return start, stop
}

// Inject adds the detector output of rec to out.
func (inj *Injector) Inject(ctx context.Context, out *series.Series, rec source.Record) error {
	if err := inj.inject(ctx, out, rec); err != nil {
		return fmt.Errorf("inject: %w", err)
	}
	return nil
}

func (inj *Injector) inject(ctx context.Context, out *series.Series, rec source.Record) error {
	start, stop := inj.Span(out)
	duration := core.Seconds(stop - start)

	model := taylor.ShiftNanos(rec.Model(), rec.Epoch, start)
	res, err := taylor.EstimateResolution(model, duration)
	if err != nil {
		return fmt.Errorf("resolution: %w", err)
	}
	inj.metrics.ObserveGenerationSamples(res.Length)
	inj.log.Debug(ctx, "generating waveform",
		logging.Float("f0", model.F0),
		logging.Float("delta_t", res.DeltaT),
		logging.Int("length", res.Length),
	)

	w, err := inj.synth.Generate(generate.Params{
		Model:          model,
		Epoch:          start,
		DeltaT:         res.DeltaT,
		Length:         res.Length,
		APlus:          rec.APlus,
		ACross:         rec.ACross,
		Psi:            rec.Psi,
		RightAscension: rec.RightAscension,
		Declination:    rec.Declination,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	inj.checkWaveform(ctx, out, w)

	if inj.contrib == nil {
		inj.contrib = out.Like()
	} else {
		inj.contrib.Reset(out)
	}
	if err := inj.sim.Simulate(inj.contrib, w); err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	if err := out.Accumulate(inj.contrib); err != nil {
		return err
	}

	inj.metrics.IncInjected()
	return nil
}

// checkWaveform emits the non-fatal advisories for w: a df*dt above
// taylor.DfDtLimit, and a frequency at or above the Nyquist frequency of
// out, which aliases in the output.
func (inj *Injector) checkWaveform(ctx context.Context, out *series.Series, w *generate.Waveform) {
	if w.MaxDfDt > taylor.DfDtLimit {
		inj.metrics.IncResolutionWarning()
		inj.log.Warn(ctx, "maximum df*dt exceeds interpolation limit",
			logging.Float("df_dt", w.MaxDfDt),
			logging.Float("limit", taylor.DfDtLimit),
		)
	}

	if len(w.F) == 0 {
		return
	}
	nyquist := 0.5 / out.DeltaT
	if fMax := vecmath.MaxAbs(w.F); fMax >= nyquist {
		inj.metrics.IncNyquistWarning()
		inj.log.Warn(ctx, "wave frequency exceeds output Nyquist frequency",
			logging.Float("max_frequency", fMax),
			logging.Float("nyquist", nyquist),
		)
	}
}

// Run injects every record from r into out, in order, and returns how many
// were added. A malformed line ends the loop with a warning and a nil error;
// what was added up to that point is kept. Read failures and injection
// failures abort the run.
func (inj *Injector) Run(ctx context.Context, r *source.Reader, out *series.Series) (int, error) {
	n := 0
	for r.Next() {
		if err := inj.inject(ctx, out, r.Record()); err != nil {
			return n, fmt.Errorf("inject: record %d (line %d): %w", n+1, r.Line(), err)
		}
		n++
	}

	err := r.Err()
	switch {
	case err == nil:
	case errors.Is(err, source.ErrMalformedRecord):
		inj.metrics.IncRejected()
		inj.log.Warn(ctx, "stopped reading sources at malformed record",
			logging.Int("injected", n),
			logging.Err(err),
		)
	default:
		return n, fmt.Errorf("inject: %w", err)
	}

	inj.log.Info(ctx, "sources injected", logging.Int("count", n))
	return n, nil
}
