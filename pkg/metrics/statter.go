package metrics

import "time"

// Statter sends request metrics. Implementations log delivery failures
// rather than returning them.
type Statter interface {
	Inc(metric string, value int64)
	Gauge(metric string, value int64)
	TimingDuration(metric string, value time.Duration)
}

func NewNoopStatter() Statter {
	return noopStatter{}
}

type noopStatter struct{}

func (noopStatter) Inc(string, int64) {}
func (noopStatter) Gauge(string, int64) {}
func (noopStatter) TimingDuration(string, time.Duration) {}
