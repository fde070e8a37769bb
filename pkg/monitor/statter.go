package monitor

import (
	"fmt"
	"time"

	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/metrics"
)

const (
	MetricProbeRunsSuccess   = "projectperm.probe.runs.success"
	MetricProbeRunsFailure   = "projectperm.probe.runs.failure"
	MetricProbeRunsCorrect   = "projectperm.probe.runs.correct"
	MetricProbeRunsIncorrect = "projectperm.probe.runs.incorrect"

	metricProbeTiming = "projectperm.probe.responses.timing.%s.%s"
)

//go:generate counterfeiter . ProbeStatter

type ProbeStatter interface {
	Rotate()
	RecordProbeDuration(logger logx.Logger, label string, d time.Duration)
	SendFailedProbe()
	SendIncorrectProbe()
	SendSlowProbe()
	SendCorrectProbe()
	SendStats()
}

// Statter reports probe outcomes as counters and probe latencies as
// per-label quantile gauges.
type Statter struct {
	statter    metrics.Statter
	histograms *HistogramSet
}

func NewStatter(statter metrics.Statter, histograms *HistogramSet) *Statter {
	return &Statter{
		statter:    statter,
		histograms: histograms,
	}
}

func (s *Statter) Rotate() {
	s.histograms.Rotate()
}

func (s *Statter) RecordProbeDuration(logger logx.Logger, label string, d time.Duration) {
	if err := s.histograms.RecordValue(label, int64(d)); err != nil {
		logger.Error(failedToRecordHistogramValue, err,
			logx.Data{Key: "label", Value: label},
			logx.Data{Key: "value", Value: int64(d)},
		)
	}
}

func (s *Statter) SendFailedProbe() {
	s.statter.Inc(MetricProbeRunsFailure, 1)
}

func (s *Statter) SendIncorrectProbe() {
	s.statter.Inc(MetricProbeRunsFailure, 1)
	s.statter.Inc(MetricProbeRunsIncorrect, 1)
}

// SendSlowProbe counts a run that answered correctly but too slowly.
func (s *Statter) SendSlowProbe() {
	s.statter.Inc(MetricProbeRunsFailure, 1)
	s.statter.Inc(MetricProbeRunsCorrect, 1)
}

func (s *Statter) SendCorrectProbe() {
	s.statter.Inc(MetricProbeRunsSuccess, 1)
	s.statter.Inc(MetricProbeRunsCorrect, 1)
}

func (s *Statter) SendStats() {
	for _, label := range s.histograms.Labels() {
		s.statter.Gauge(fmt.Sprintf(metricProbeTiming, label, "p50"), s.histograms.ValueAtQuantile(label, 50))
		s.statter.Gauge(fmt.Sprintf(metricProbeTiming, label, "p90"), s.histograms.ValueAtQuantile(label, 90))
		s.statter.Gauge(fmt.Sprintf(metricProbeTiming, label, "p99"), s.histograms.ValueAtQuantile(label, 99))
		s.statter.Gauge(fmt.Sprintf(metricProbeTiming, label, "max"), s.histograms.Max(label))
	}
}
