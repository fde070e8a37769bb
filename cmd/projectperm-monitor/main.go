package main

import (
	"context"
	"crypto/tls"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/cmd/flags"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/metrics"
	"github.com/campusfm/projectperm/pkg/metrics/statsdx"
	"github.com/campusfm/projectperm/pkg/monitor"
	"github.com/campusfm/projectperm/pkg/perm"
	goflags "github.com/jessevdk/go-flags"
)

type options struct {
	Perm permOptions `group:"Perm" namespace:"perm"`

	StatsD flags.StatsDFlag `group:"StatsD" namespace:"statsd"`

	Logger flags.LagerFlag

	Frequency      time.Duration `long:"frequency" description:"Frequency with which the probe is issued" default:"5s"`
	Timeout        time.Duration `long:"timeout" description:"Time after which the probe will cancel a run" default:"1s"`
	CleanupTimeout time.Duration `long:"cleanup-timeout" description:"Time after which the probe will give up removing its assignments" default:"10s"`
	MaxLatency     time.Duration `long:"max-latency" description:"Time after which a call is considered slow" default:"100ms"`
}

type permOptions struct {
	Hostname      string               `long:"hostname" description:"Hostname used to resolve the address of projectperm" required:"true"`
	Port          int                  `long:"port" description:"Port used to connect to projectperm" default:"6283"`
	CACertificate []flags.FileOrString `long:"ca-certificate" description:"File path of projectperm's CA certificate"`
	Insecure      bool                 `long:"insecure" description:"Connect without TLS"`
	Token         string               `long:"token" description:"OIDC ID token sent with every call"`
}

func main() {
	opts := &options{}
	parser := goflags.NewParser(opts, goflags.Default)
	parser.NamespaceDelimiter = "-"

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	logger := opts.Logger.Logger("projectperm-monitor")

	logger.Debug(starting)
	defer logger.Debug(finished)

	var statter metrics.Statter = metrics.NewNoopStatter()
	if opts.StatsD.Enabled() {
		statsDClient, err := opts.StatsD.Client(logger)
		if err != nil {
			os.Exit(1)
		}
		defer statsDClient.Close()

		statter = statsdx.NewStatter(logger.WithName("statsd"), statsDClient)
	}

	client, err := dial(logger, opts.Perm)
	if err != nil {
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	runner := monitor.NewRunner(
		monitor.NewProbe(client, clock.NewClock()),
		monitor.NewStatter(statter, monitor.NewHistogramSet()),
		monitor.WithFrequency(opts.Frequency),
		monitor.WithTimeout(opts.Timeout),
		monitor.WithCleanupTimeout(opts.CleanupTimeout),
		monitor.WithMaxLatency(opts.MaxLatency),
	)

	runner.Run(ctx, logger.WithName("probe"))
}

func dial(logger logx.Logger, o permOptions) (*perm.Client, error) {
	addr := net.JoinHostPort(o.Hostname, strconv.Itoa(o.Port))

	var dialOpts []perm.DialOption
	if o.Insecure {
		dialOpts = append(dialOpts, perm.WithInsecure())
	} else {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

		// Without CA certificates the system roots are used.
		if len(o.CACertificate) != 0 {
			pool, err := flags.CertPool(o.CACertificate...)
			if err != nil {
				logger.Error(failedToAppendCertToPool, err, logx.Data{Key: "location", Value: o.CACertificate})
				return nil, err
			}
			tlsConfig.RootCAs = pool
		}

		dialOpts = append(dialOpts, perm.WithTLSConfig(tlsConfig))
	}

	if o.Token != "" {
		dialOpts = append(dialOpts, perm.WithToken(o.Token))
	}

	client, err := perm.Dial(addr, dialOpts...)
	if err != nil {
		logger.Error(failedToCreatePermClient, err, logx.Data{Key: "addr", Value: addr})
		return nil, err
	}

	return client, nil
}
