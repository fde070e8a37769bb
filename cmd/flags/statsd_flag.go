package flags

import (
	"net"
	"strconv"

	"github.com/cactus/go-statsd-client/statsd"
	"github.com/campusfm/projectperm/pkg/logx"
)

type StatsDFlag struct {
	Hostname string `long:"hostname" description:"Hostname used to connect to StatsD server"`
	Port     int    `long:"port" description:"Port used to connect to StatsD server" default:"8125"`
}

func (f StatsDFlag) Enabled() bool {
	return f.Hostname != ""
}

// Client opens a buffered StatsD client. Callers close it.
func (f StatsDFlag) Client(logger logx.Logger) (statsd.Statter, error) {
	addr := net.JoinHostPort(f.Hostname, strconv.Itoa(f.Port))

	client, err := statsd.NewBufferedClient(addr, "", 0, 0)
	if err != nil {
		logger.Error(failedToConnectToStatsD, err, logx.Data{Key: "addr", Value: addr})
		return nil, err
	}

	return client, nil
}
