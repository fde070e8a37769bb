package testmetrics

import (
	"sync"
	"time"
)

// Statter records every call for assertions in tests.
type Statter struct {
	lock                sync.RWMutex
	incCalls            []Call
	gaugeCalls          []Call
	timingDurationCalls []TimingDurationCall
}

type Call struct {
	Metric string
	Value  int64
}

type TimingDurationCall struct {
	Metric string
	Value  time.Duration
}

func NewStatter() *Statter {
	return &Statter{}
}

func (s *Statter) IncCalls() []Call {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]Call(nil), s.incCalls...)
}

func (s *Statter) GaugeCalls() []Call {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]Call(nil), s.gaugeCalls...)
}

func (s *Statter) TimingDurationCalls() []TimingDurationCall {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return append([]TimingDurationCall(nil), s.timingDurationCalls...)
}

func (s *Statter) Inc(metric string, value int64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.incCalls = append(s.incCalls, Call{Metric: metric, Value: value})
}

func (s *Statter) Gauge(metric string, value int64) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.gaugeCalls = append(s.gaugeCalls, Call{Metric: metric, Value: value})
}

func (s *Statter) TimingDuration(metric string, value time.Duration) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.timingDurationCalls = append(s.timingDurationCalls, TimingDurationCall{Metric: metric, Value: value})
}
