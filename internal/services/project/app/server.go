// Package server wires the project runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	projectv1 "github.com/agorahq/agora/api/gen/go/project/v1"
	"github.com/agorahq/agora/internal/platform/config"
	"github.com/agorahq/agora/internal/platform/eventbus"
	"github.com/agorahq/agora/internal/services/file/event"
	projectservice "github.com/agorahq/agora/internal/services/project/api/grpc/project"
	"github.com/agorahq/agora/internal/services/project/application"
	"github.com/agorahq/agora/internal/services/project/storage"
	projectsqlite "github.com/agorahq/agora/internal/services/project/storage/sqlite"
	projectsurreal "github.com/agorahq/agora/internal/services/project/storage/surreal"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath        string `env:"AGORA_DB_PATH"`
	SurrealDSN    string `env:"AGORA_SURREAL_DSN"`
	SurrealNS     string `env:"AGORA_SURREAL_NS" envDefault:"agora"`
	SurrealDB     string `env:"AGORA_SURREAL_DB" envDefault:"project"`
	SurrealUser   string `env:"AGORA_SURREAL_USER"`
	SurrealPass   string `env:"AGORA_SURREAL_PASS"`
	AMQPURI       string `env:"AGORA_AMQP_URI"`
	EventExchange string `env:"AGORA_EVENT_EXCHANGE" envDefault:"file"`
	EventIssuer   string `env:"AGORA_EVENT_ISSUER" envDefault:"project-service"`
	AppID         string `env:"AGORA_APP_ID" envDefault:"project"`
	UIDHeader     string `env:"AGORA_UID_HEADER" envDefault:"x-uid"`
}

func loadServerEnv() (serverEnv, error) {
	var cfg serverEnv
	if err := config.ParseEnv(&cfg); err != nil {
		return serverEnv{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "project.db")
	}
	return cfg, nil
}

// Server hosts the project gRPC API, storage and broker lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	closeStore func() error
	amqpConn   *amqp.Connection
}

// New creates a configured project server listening on the provided port.
func New(ctx context.Context, port int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured project server for the provided address.
func NewWithAddr(ctx context.Context, addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	env, err := loadServerEnv()
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	store, closeStore, err := openProjectStore(ctx, env)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	opts := []application.Option{}
	var amqpConn *amqp.Connection
	if strings.TrimSpace(env.AMQPURI) != "" {
		conn, bus, err := openEventBus(env)
		if err != nil {
			_ = closeStore()
			_ = listener.Close()
			return nil, err
		}
		amqpConn = conn
		emitter := event.NewBus(bus, env.EventExchange, env.AppID, env.EventIssuer)
		opts = append(opts, application.WithEventEmitter(emitter))
	} else {
		log.Print("no broker configured, project events will not be emitted")
	}

	app := application.New(store, opts...)
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	apiService := projectservice.NewService(app, env.UIDHeader)
	healthServer := health.NewServer()
	projectv1.RegisterProjectServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("project.v1.ProjectService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		closeStore: closeStore,
		amqpConn:   amqpConn,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a project server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(ctx, port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("project server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases project server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.amqpConn != nil {
		if err := s.amqpConn.Close(); err != nil {
			log.Printf("close amqp connection: %v", err)
		}
	}
	if s.closeStore != nil {
		if err := s.closeStore(); err != nil {
			log.Printf("close project store: %v", err)
		}
	}
}

// openProjectStore picks SurrealDB when a DSN is configured and falls back to
// the embedded sqlite store otherwise.
func openProjectStore(ctx context.Context, env serverEnv) (storage.ProjectStore, func() error, error) {
	if strings.TrimSpace(env.SurrealDSN) != "" {
		store, err := projectsurreal.Open(ctx, projectsurreal.Config{
			DSN:       env.SurrealDSN,
			Namespace: env.SurrealNS,
			Database:  env.SurrealDB,
			Username:  env.SurrealUser,
			Password:  env.SurrealPass,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open project surreal store: %w", err)
		}
		return store, func() error { return store.Close(context.Background()) }, nil
	}

	if dir := filepath.Dir(env.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := projectsqlite.Open(env.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open project sqlite store: %w", err)
	}
	return store, store.Close, nil
}

// openEventBus dials the broker and declares the exchange this service
// publishes to. Publishers own their exchange; consumers never declare it.
func openEventBus(env serverEnv) (*amqp.Connection, *eventbus.AMQPBus, error) {
	conn, err := amqp.Dial(env.AMQPURI)
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open amqp channel: %w", err)
	}
	bus, err := eventbus.NewAMQPBus(ch, env.AppID)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	if err := bus.DeclareExchange(env.EventExchange); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, bus, nil
}
