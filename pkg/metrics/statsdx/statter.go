package statsdx

import (
	"time"

	"github.com/cactus/go-statsd-client/statsd"
	"github.com/campusfm/projectperm/pkg/logx"
)

const (
	alwaysSample   = 1
	failureMessage = "failed-to-send-metric"
)

type Statter struct {
	statsdClient statsd.Statter
	logger       logx.Logger
}

func NewStatter(logger logx.Logger, statsdClient statsd.Statter) *Statter {
	return &Statter{
		statsdClient: statsdClient,
		logger:       logger.WithName("statsd"),
	}
}

func (s *Statter) Inc(metric string, value int64) {
	s.report(metric, value, s.statsdClient.Inc(metric, value, alwaysSample))
}

func (s *Statter) Gauge(metric string, value int64) {
	s.report(metric, value, s.statsdClient.Gauge(metric, value, alwaysSample))
}

func (s *Statter) TimingDuration(metric string, value time.Duration) {
	s.report(metric, value, s.statsdClient.TimingDuration(metric, value, alwaysSample))
}

func (s *Statter) report(metric string, value interface{}, err error) {
	if err == nil {
		return
	}

	s.logger.Error(failureMessage, err,
		logx.Data{Key: "metric", Value: metric},
		logx.Data{Key: "value", Value: value},
	)
}
