package main

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/cmd/flags"
	"github.com/campusfm/projectperm/pkg/api"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/api/repos/db"
	"github.com/campusfm/projectperm/pkg/api/repos/inmemory"
	"github.com/campusfm/projectperm/pkg/config"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/logx/cef"
	"github.com/campusfm/projectperm/pkg/metrics/statsdx"
	"github.com/campusfm/projectperm/pkg/migrations"
	"github.com/campusfm/projectperm/pkg/seed"
	"github.com/campusfm/projectperm/pkg/sqlx"
)

const (
	auditVendor  cef.Vendor  = "campusfm"
	auditProduct cef.Product = "projectperm"
	auditVersion cef.Version = "1"
)

type ServeCommand struct {
	Logger flags.LagerFlag

	Hostname          string        `long:"listen-hostname" description:"Hostname on which to listen for gRPC traffic" default:"0.0.0.0"`
	Port              int           `long:"listen-port" description:"Port on which to listen for gRPC traffic" default:"6283"`
	MaxConnectionIdle time.Duration `long:"max-connection-idle" description:"Time after which an idle connection is closed" default:"10s"`

	TLS      flags.ServerTLSFlag `group:"TLS" namespace:"tls"`
	DB       flags.DBFlag        `group:"DB" namespace:"db"`
	Snapshot flags.SnapshotFlag  `group:"Snapshot" namespace:"snapshot"`
	StatsD   flags.StatsDFlag    `group:"StatsD" namespace:"statsd"`
	OIDC     flags.OIDCFlag      `group:"OIDC" namespace:"oidc"`

	PolicyFile string `long:"policy-file" description:"YAML or JSON file with the department allow-list and seed assignments"`
	EnvFile    string `long:"env-file" description:"Dotenv file read before PROJECTPERM_ environment overrides" default:".env"`
	SeedPolicy string `long:"seed-policy" description:"When to write the seed assignments; overrides the policy file" choice:"always" choice:"when-empty" choice:"never"`
	AuditLog   string `long:"audit-log" description:"File that receives CEF audit events; stdout when empty"`
}

func (cmd ServeCommand) Execute([]string) error {
	ctx := context.Background()
	logger := cmd.Logger.Logger("projectperm").WithName("serve")

	logger.Debug(starting)
	defer logger.Debug(finished)

	cfg, err := config.Load(cmd.PolicyFile, config.WithEnvFile(cmd.EnvFile))
	if err != nil {
		logger.Error(failedToLoadConfig, err, logx.Data{Key: "policy_file", Value: cmd.PolicyFile})
		return err
	}

	var conn *sqlx.DB
	if !cmd.DB.IsInMemory() || cmd.Snapshot.NeedsConnection() {
		conn, err = cmd.DB.Connect(ctx, logger)
		if err != nil {
			return err
		}
		defer conn.Close()
	}

	store, err := cmd.store(ctx, logger, conn)
	if err != nil {
		return err
	}

	seedPolicy := cfg.SeedPolicy()
	if cmd.SeedPolicy != "" {
		seedPolicy = seed.Policy(cmd.SeedPolicy)
	}

	seeded, err := seed.NewSeeder(store, seedPolicy, cfg.SeedAssignments()).Seed(ctx, logger)
	if err != nil {
		logger.Error(failedToSeedAssignments, err)
		return err
	}
	logger.Info(seededAssignments, logx.Data{Key: "count", Value: seeded})

	auditWriter, err := cmd.auditWriter()
	if err != nil {
		logger.Error(failedToOpenAuditLog, err, logx.Data{Key: "path", Value: cmd.AuditLog})
		return err
	}
	defer auditWriter.Close()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = cmd.Hostname
	}

	securityLogger := cef.NewLogger(auditWriter, auditVendor, auditProduct, auditVersion, cef.Hostname(hostname), cmd.Port, logger)

	serverOpts := []api.ServerOption{
		api.WithLogger(logger.WithName("grpc-server")),
		api.WithSecurityLogger(securityLogger),
		api.WithMaxConnectionIdle(cmd.MaxConnectionIdle),
		api.WithPolicy(cfg.Policy()),
		api.WithStore(store),
	}

	if cmd.TLS.Enabled() {
		tlsConfig, e := cmd.TLS.Config()
		if e != nil {
			logger.Error(failedToParseTLSCredentials, e)
			return e
		}
		serverOpts = append(serverOpts, api.WithTLSConfig(tlsConfig))
	}

	if cmd.StatsD.Enabled() {
		statsDClient, e := cmd.StatsD.Client(logger)
		if e != nil {
			return e
		}
		defer statsDClient.Close()

		serverOpts = append(serverOpts, api.WithStatter(statsdx.NewStatter(logger.WithName("statsd"), statsDClient)))
	}

	if cmd.OIDC.Enabled() {
		provider, e := cmd.OIDC.Provider(ctx, logger)
		if e != nil {
			return e
		}
		serverOpts = append(serverOpts, api.WithOIDCProvider(provider, cmd.OIDC.ClientID))
	}

	listeningLogData := []logx.Data{
		{Key: "protocol", Value: "tcp"},
		{Key: "hostname", Value: cmd.Hostname},
		{Key: "port", Value: cmd.Port},
	}

	lis, err := net.Listen("tcp", net.JoinHostPort(cmd.Hostname, strconv.Itoa(cmd.Port)))
	if err != nil {
		logger.Error(failedToListen, err, listeningLogData...)
		return err
	}

	server := api.NewServer(serverOpts...)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		if sig, ok := <-signals; ok {
			logger.Info(receivedSignal, logx.Data{Key: "signal", Value: sig.String()})
			server.GracefulStop()
		}
	}()

	logger.Info(starting, listeningLogData...)
	err = server.Serve(lis)
	if err == api.ErrServerStopped {
		return nil
	}

	return err
}

// store picks the SQL store for the mysql driver and otherwise an in-memory
// store restored from its snapshot.
func (cmd ServeCommand) store(ctx context.Context, logger logx.Logger, conn *sqlx.DB) (repos.AssignmentRepo, error) {
	if !cmd.DB.IsInMemory() {
		ok, err := sqlx.VerifyAppliedMigrations(ctx, logger, conn, migrations.TableName, migrations.Migrations)
		if err != nil {
			logger.Error(failedToVerifyMigrations, err)
			return nil, err
		}

		if !ok {
			logger.Error(migrationsOutOfSync, ErrMigrationsOutOfSync)
			return nil, ErrMigrationsOutOfSync
		}

		logger.Info(usingSQLAssignmentStore)
		return db.NewStore(conn), nil
	}

	snapshotter, err := cmd.Snapshot.Snapshotter(conn)
	if err != nil {
		logger.Error(failedToCreateSnapshotter, err)
		return nil, err
	}

	store := inmemory.NewStore(inmemory.WithClock(clock.NewClock()), inmemory.WithSnapshotter(snapshotter))

	// An unreadable snapshot is not fatal; the store starts empty.
	if err = store.Load(ctx, logger); err != nil {
		logger.Error(failedToLoadSnapshot, err)
	}

	logger.Info(usingInMemoryAssignmentStore, logx.Data{Key: "snapshot_backend", Value: cmd.Snapshot.Backend})
	return store, nil
}

func (cmd ServeCommand) auditWriter() (io.WriteCloser, error) {
	if cmd.AuditLog == "" {
		return nopCloser{os.Stdout}, nil
	}

	return os.OpenFile(cmd.AuditLog, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
