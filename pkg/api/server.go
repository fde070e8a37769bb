package api

import (
	"crypto/tls"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"code.cloudfoundry.org/clock"
	"github.com/campusfm/projectperm/pkg/api/internal/rpc/interceptors"
	"github.com/campusfm/projectperm/pkg/api/protos"
	"github.com/campusfm/projectperm/pkg/api/repos"
	"github.com/campusfm/projectperm/pkg/api/repos/inmemory"
	"github.com/campusfm/projectperm/pkg/api/rpc"
	"github.com/campusfm/projectperm/pkg/logx"
	"github.com/campusfm/projectperm/pkg/metrics"
	"github.com/campusfm/projectperm/pkg/oidcx"
	"github.com/campusfm/projectperm/pkg/rbac"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
)

type Server struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger
	server         *grpc.Server
}

func NewServer(opts ...ServerOption) *Server {
	config := &serverConfig{
		logger:         logx.NewNoopLogger(),
		securityLogger: logx.NewNoopSecurityLogger(),
		clock:          clock.NewClock(),
		policy:         rbac.DefaultPolicy(),
	}

	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger

	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p interface{}) error {
			grpcErr := status.Errorf(codes.Internal, "%s", p)
			logger.Error(internal, grpcErr)
			return grpcErr
		}),
	}
	unaryServerInterceptors := []grpc.UnaryServerInterceptor{
		grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		interceptors.ReceiptTimeInterceptor(config.clock),
	}

	if config.oidcProvider != nil {
		unaryServerInterceptors = append(unaryServerInterceptors,
			interceptors.OIDCInterceptor(config.oidcProvider, config.oidcClientID, config.securityLogger))
	}

	if config.statter != nil {
		unaryServerInterceptors = append(unaryServerInterceptors, interceptors.MetricsInterceptor(config.statter))
	}

	unaryMiddleware := grpc_middleware.ChainUnaryServer(unaryServerInterceptors...)

	serverOpts := []grpc.ServerOption{
		grpc.KeepaliveParams(config.keepalive),
		grpc.UnaryInterceptor(unaryMiddleware),
	}

	if config.credentials != nil {
		serverOpts = append(serverOpts, grpc.Creds(config.credentials))
	}

	server := grpc.NewServer(serverOpts...)

	store := config.store
	if store == nil {
		store = inmemory.NewStore(inmemory.WithClock(config.clock))
	}

	assignmentServiceServer := rpc.NewAssignmentServiceServer(logger, config.securityLogger, store)
	protos.RegisterAssignmentServiceServer(server, assignmentServiceServer)

	permissionServiceServer := rpc.NewPermissionServiceServer(logger, rbac.NewResolver(store, config.policy))
	protos.RegisterPermissionServiceServer(server, permissionServiceServer)

	return &Server{
		logger:         logger,
		securityLogger: config.securityLogger,
		server:         server,
	}
}

func (s *Server) Serve(listener net.Listener) error {
	err := s.server.Serve(listener)

	switch err {
	case nil:
		return nil
	case grpc.ErrServerStopped:
		return ErrServerStopped
	default:
		return ErrServerFailedToStart
	}
}

func (s *Server) GracefulStop() {
	s.server.GracefulStop()
}

func (s *Server) Stop() {
	s.server.Stop()
}

type ServerOption func(*serverConfig)

func WithLogger(logger logx.Logger) ServerOption {
	return func(o *serverConfig) {
		o.logger = logger
	}
}

func WithSecurityLogger(logger logx.SecurityLogger) ServerOption {
	return func(o *serverConfig) {
		o.securityLogger = logger
	}
}

func WithTLSConfig(config *tls.Config) ServerOption {
	return func(o *serverConfig) {
		o.credentials = credentials.NewTLS(config)
	}
}

func WithMaxConnectionIdle(duration time.Duration) ServerOption {
	return func(o *serverConfig) {
		o.keepalive.MaxConnectionIdle = duration
	}
}

// WithOIDCProvider requires every call to carry an ID token issued for
// clientID.
func WithOIDCProvider(provider oidcx.Provider, clientID string) ServerOption {
	return func(o *serverConfig) {
		o.oidcProvider = provider
		o.oidcClientID = clientID
	}
}

func WithStatter(statter metrics.Statter) ServerOption {
	return func(o *serverConfig) {
		o.statter = statter
	}
}

func WithPolicy(policy rbac.Policy) ServerOption {
	return func(o *serverConfig) {
		o.policy = policy
	}
}

// WithStore replaces the default unpersisted in-memory store.
func WithStore(store repos.AssignmentRepo) ServerOption {
	return func(o *serverConfig) {
		o.store = store
	}
}

func WithClock(c clock.Clock) ServerOption {
	return func(o *serverConfig) {
		o.clock = c
	}
}

type serverConfig struct {
	logger         logx.Logger
	securityLogger logx.SecurityLogger

	credentials credentials.TransportCredentials
	keepalive   keepalive.ServerParameters
	statter     metrics.Statter
	clock       clock.Clock

	oidcProvider oidcx.Provider
	oidcClientID string

	policy rbac.Policy
	store  repos.AssignmentRepo
}
