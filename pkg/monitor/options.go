package monitor

import (
	"time"

	"code.cloudfoundry.org/clock"
)

const (
	DefaultFrequency      = 5 * time.Second
	DefaultTimeout        = time.Second
	DefaultCleanupTimeout = time.Second * 10
	DefaultMaxLatency     = time.Millisecond * 100
)

type Option func(*options)

func WithFrequency(frequency time.Duration) Option {
	return func(o *options) {
		o.frequency = frequency
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithCleanupTimeout(cleanupTimeout time.Duration) Option {
	return func(o *options) {
		o.cleanupTimeout = cleanupTimeout
	}
}

func WithMaxLatency(latency time.Duration) Option {
	return func(o *options) {
		o.maxLatency = latency
	}
}

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

type options struct {
	frequency      time.Duration
	timeout        time.Duration
	cleanupTimeout time.Duration
	maxLatency     time.Duration
	clock          clock.Clock
}

func defaultOptions() *options {
	return &options{
		frequency:      DefaultFrequency,
		timeout:        DefaultTimeout,
		cleanupTimeout: DefaultCleanupTimeout,
		maxLatency:     DefaultMaxLatency,
		clock:          clock.NewClock(),
	}
}
