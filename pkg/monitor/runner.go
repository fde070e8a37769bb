package monitor

import (
	"context"

	"github.com/campusfm/projectperm/pkg/logx"
	uuid "github.com/satori/go.uuid"
)

// Runner issues the probe on a schedule and reports every outcome to the
// statter.
type Runner struct {
	probe   *Probe
	statter ProbeStatter
	opts    *options
}

func NewRunner(probe *Probe, statter ProbeStatter, opts ...Option) *Runner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Runner{
		probe:   probe,
		statter: statter,
		opts:    o,
	}
}

// Run probes every frequency and rotates the histograms every
// ProbeHistogramRefreshTime until ctx is done.
func (r *Runner) Run(ctx context.Context, logger logx.Logger) {
	probeTicker := r.opts.clock.NewTicker(r.opts.frequency)
	defer probeTicker.Stop()

	rotateTicker := r.opts.clock.NewTicker(ProbeHistogramRefreshTime)
	defer rotateTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-rotateTicker.C():
			r.statter.Rotate()
		case <-probeTicker.C():
			r.RunOnce(ctx, logger)
		}
	}
}

// RunOnce performs a single setup, run and cleanup cycle. Setup and run
// share the run timeout; cleanup always happens with its own timeout.
func (r *Runner) RunOnce(ctx context.Context, logger logx.Logger) {
	uniqueSuffix := uuid.NewV4().String()
	logger = logger.WithData(logx.Data{Key: "probe.id", Value: uniqueSuffix})

	defer r.statter.SendStats()
	defer func() {
		durations, err := r.probe.Cleanup(ctx, r.opts.cleanupTimeout, logger.WithName("cleanup"), uniqueSuffix)
		if err != nil {
			logger.Error(cleanupFailed, err)
			return
		}
		r.record(logger, durations)
	}()

	cctx, cancel := context.WithTimeout(ctx, r.opts.timeout)
	defer cancel()

	durations, err := r.probe.Setup(cctx, logger.WithName("setup"), uniqueSuffix)
	if err != nil {
		logger.Error(probeFailed, err)
		r.statter.SendFailedProbe()
		return
	}
	r.record(logger, durations)

	correct, durations, err := r.probe.Run(cctx, logger.WithName("run"), uniqueSuffix)
	if err != nil {
		logger.Error(probeFailed, err)
		r.statter.SendFailedProbe()
		return
	}
	r.record(logger, durations)

	if !correct {
		logger.Info(probeIncorrect)
		r.statter.SendIncorrectProbe()
		return
	}

	for _, d := range durations {
		if d.Duration > r.opts.maxLatency {
			logger.Error(exceededMaxLatency, ExceededMaxLatencyError{Label: d.Label, Duration: d.Duration})
			r.statter.SendSlowProbe()
			return
		}
	}

	r.statter.SendCorrectProbe()
}

func (r *Runner) record(logger logx.Logger, durations []LabeledDuration) {
	for _, d := range durations {
		r.statter.RecordProbeDuration(logger, d.Label, d.Duration)
	}
}
