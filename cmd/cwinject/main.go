// Command cwinject generates the detector output of continuous-wave sources.
//
// Usage:
//
//	cwinject [flags]
//
// Sources are read from -source, one per line (see package source for the
// format); without -source a single 100 Hz test source is injected. The
// output series is written as text to -out or to stdout.
//
// Examples:
//
//	cwinject -out strain.txt
//	cwinject -source pulsars.txt -site LHO -start-sec 800000000 -out lho.txt
//	cwinject -source pulsars.txt -response resp.txt -het-freq 100 -npt 4096 -dt 1
//	cwinject -list-sites
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-cw/cw/detector"
	"github.com/cwbudde/algo-cw/cw/generate"
	"github.com/cwbudde/algo-cw/cw/inject"
	"github.com/cwbudde/algo-cw/cw/series"
	"github.com/cwbudde/algo-cw/cw/source"
	"github.com/cwbudde/algo-cw/internal/core"
	"github.com/cwbudde/algo-cw/internal/logging"
	"github.com/cwbudde/algo-cw/internal/observability"
)

type cliConfig struct {
	sourcePath   string
	responsePath string
	site         string
	outPath      string
	startSec     int64
	startNsec    int64
	npt          int
	dt           float64
	hetSec       int64
	hetNsec      int64
	hetFreq      float64
	logLevel     string
	logFormat    string
	metricsFile  string
	listSites    bool
}

func (c cliConfig) validate() error {
	if c.npt <= 0 {
		return fmt.Errorf("-npt must be > 0: %d", c.npt)
	}
	if c.dt <= 0 || !core.IsFinite(c.dt) {
		return fmt.Errorf("-dt must be finite and > 0: %v", c.dt)
	}
	if c.startNsec < 0 || c.startNsec >= core.NanosPerSecond {
		return fmt.Errorf("-start-nsec must be in [0,1e9): %d", c.startNsec)
	}
	if c.hetNsec < 0 || c.hetNsec >= core.NanosPerSecond {
		return fmt.Errorf("-het-nsec must be in [0,1e9): %d", c.hetNsec)
	}
	if c.hetFreq < 0 || !core.IsFinite(c.hetFreq) {
		return fmt.Errorf("-het-freq must be finite and >= 0: %v", c.hetFreq)
	}
	if c.site != "" {
		if _, err := detector.LookupSite(c.site); err != nil {
			return err
		}
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	env := logging.ConfigFromEnv()
	cfg := cliConfig{}

	fs := flag.NewFlagSet("cwinject", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.sourcePath, "source", "", "source file (default: one built-in 100 Hz source)")
	fs.StringVar(&cfg.responsePath, "response", "", "detector response function file (default: unit response)")
	fs.StringVar(&cfg.site, "site", "", "detector site for antenna pattern (default: none)")
	fs.StringVar(&cfg.outPath, "out", "", "output file (default: stdout)")
	fs.Int64Var(&cfg.startSec, "start-sec", 0, "GPS seconds of the first output sample")
	fs.Int64Var(&cfg.startNsec, "start-nsec", 0, "GPS nanoseconds of the first output sample")
	fs.IntVar(&cfg.npt, "npt", 65536, "number of output samples")
	fs.Float64Var(&cfg.dt, "dt", 9.765625e-4, "output sampling interval in seconds")
	fs.Int64Var(&cfg.hetSec, "het-sec", 0, "GPS seconds of the heterodyne reference epoch")
	fs.Int64Var(&cfg.hetNsec, "het-nsec", 0, "GPS nanoseconds of the heterodyne reference epoch")
	fs.Float64Var(&cfg.hetFreq, "het-freq", 0, "heterodyne frequency in Hz (0: none)")
	fs.StringVar(&cfg.logLevel, "log-level", orDefault(env.Level, "info"), "log level: debug, info, warn, error")
	fs.StringVar(&cfg.logFormat, "log-format", orDefault(env.Format, "text"), "log format: text or json")
	fs.StringVar(&cfg.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	fs.BoolVar(&cfg.listSites, "list-sites", false, "list available detector sites")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cwinject [flags]\n\n")
		fmt.Fprintf(stderr, "Injects continuous-wave sources into a detector output time series.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 0 {
		return cliConfig{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if cfg.listSites {
		for _, name := range detector.SiteNames() {
			fmt.Println(name)
		}
		return
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	log := logging.New(logging.Config{Level: cfg.logLevel, Format: cfg.logFormat})
	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.Error(context.Background(), "injection failed", logging.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, log logging.Logger, stdout io.Writer) error {
	det := detector.Detector{
		HeterodyneEpoch: core.GPSNanos(cfg.hetSec, cfg.hetNsec),
	}
	if cfg.site != "" {
		site, err := detector.LookupSite(cfg.site)
		if err != nil {
			return err
		}
		det.Site = &site
	}
	if cfg.responsePath != "" {
		tr, err := readResponse(cfg.responsePath)
		if err != nil {
			return err
		}
		det.Transfer = tr
	}

	sim, err := detector.NewSimulator(det)
	if err != nil {
		return err
	}
	metrics, err := observability.NewRunCollector(nil)
	if err != nil {
		return err
	}
	inj, err := inject.New(generate.NewGenerator(), sim,
		inject.WithLogger(log),
		inject.WithMetrics(metrics),
		inject.WithPadding(det.Padding()),
	)
	if err != nil {
		return err
	}

	out, err := series.New(core.GPSNanos(cfg.startSec, cfg.startNsec), cfg.dt, cfg.npt)
	if err != nil {
		return err
	}
	out.HeterodyneFreq = cfg.hetFreq
	log.Info(ctx, "output series",
		logging.Int64("epoch", out.Epoch),
		logging.Int64("end", out.End()),
		logging.Float("delta_t", out.DeltaT),
		logging.Int("npt", out.Len()),
		logging.String("detector", sim.Detector().String()),
	)

	if cfg.sourcePath == "" {
		if err := inj.Inject(ctx, out, source.Default()); err != nil {
			return err
		}
	} else {
		f, err := os.Open(cfg.sourcePath)
		if err != nil {
			return fmt.Errorf("open source file: %w", err)
		}
		_, err = inj.Run(ctx, source.NewReader(f), out)
		_ = f.Close()
		if err != nil {
			return err
		}
	}

	if logging.ParseLevel(cfg.logLevel) <= slog.LevelDebug {
		logSpectrum(ctx, log, out)
	}

	if err := writeOutput(cfg.outPath, out, stdout); err != nil {
		return err
	}
	if cfg.metricsFile != "" {
		if err := metrics.WriteTextfile(cfg.metricsFile); err != nil {
			return err
		}
	}
	return nil
}

// logSpectrum logs the dominant output frequency. It runs a full FFT over
// the output, so callers only invoke it at debug level.
func logSpectrum(ctx context.Context, log logging.Logger, out *series.Series) {
	f, err := out.DominantFrequency()
	if err != nil {
		log.Warn(ctx, "output spectrum unavailable", logging.Err(err))
		return
	}
	log.Debug(ctx, "output spectrum", logging.Float("dominant_hz", f), logging.Float("peak", out.Peak()))
}

func readResponse(path string) (*detector.Transfer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open response file: %w", err)
	}
	defer f.Close()
	return detector.ReadResponse(f)
}

func writeOutput(path string, out *series.Series, stdout io.Writer) error {
	if path == "" {
		return out.WriteText(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := out.WriteText(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
