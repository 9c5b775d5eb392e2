// Package server wires the file event worker runtime: the broker consumer
// that mirrors file events into projects, plus a health endpoint.
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

	"github.com/agorahq/agora/internal/platform/config"
	"github.com/agorahq/agora/internal/platform/eventbus"
	"github.com/agorahq/agora/internal/services/file/handler"
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

type workerEnv struct {
	DBPath        string   `env:"AGORA_DB_PATH"`
	SurrealDSN    string   `env:"AGORA_SURREAL_DSN"`
	SurrealNS     string   `env:"AGORA_SURREAL_NS" envDefault:"agora"`
	SurrealDB     string   `env:"AGORA_SURREAL_DB" envDefault:"project"`
	SurrealUser   string   `env:"AGORA_SURREAL_USER"`
	SurrealPass   string   `env:"AGORA_SURREAL_PASS"`
	AMQPURI       string   `env:"AGORA_AMQP_URI,required"`
	EventExchange string   `env:"AGORA_EVENT_EXCHANGE" envDefault:"file"`
	EventQueue    string   `env:"AGORA_EVENT_QUEUE" envDefault:"project-file"`
	AppID         string   `env:"AGORA_APP_ID" envDefault:"project"`
	Issuers       []string `env:"AGORA_ISSUERS_WHITELIST" envSeparator:","`
}

// Worker hosts the broker consumer and a gRPC health endpoint.
type Worker struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	consume    func(ctx context.Context) error
	closeStore func() error
	amqpConn   *amqp.Connection
}

// New creates a configured worker with its health endpoint on the provided
// port.
func New(ctx context.Context, port int) (*Worker, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured worker for the provided health address.
func NewWithAddr(ctx context.Context, addr string) (*Worker, error) {
	var env workerEnv
	if err := config.ParseEnv(&env); err != nil {
		return nil, err
	}
	if strings.TrimSpace(env.DBPath) == "" {
		env.DBPath = filepath.Join("data", "project.db")
	}
	if len(env.Issuers) == 0 {
		return nil, fmt.Errorf("at least one trusted event issuer is required")
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	store, closeStore, err := openProjectStore(ctx, env)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	conn, err := amqp.Dial(env.AMQPURI)
	if err != nil {
		_ = closeStore()
		_ = listener.Close()
		return nil, fmt.Errorf("dial amqp broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		_ = closeStore()
		_ = listener.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	bus, err := eventbus.NewAMQPBus(ch, env.AppID)
	if err != nil {
		_ = conn.Close()
		_ = closeStore()
		_ = listener.Close()
		return nil, err
	}
	// The exchange belongs to the producer; this side only binds its queue.
	if err := bus.QueueBind(env.EventExchange, env.EventQueue); err != nil {
		_ = conn.Close()
		_ = closeStore()
		_ = listener.Close()
		return nil, err
	}

	app := application.New(store)
	eventHandler := handler.New(app, env.Issuers, log.Default())

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Worker{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		consume: func(ctx context.Context) error {
			return bus.Consume(ctx, env.EventQueue, eventHandler)
		},
		closeStore: closeStore,
		amqpConn:   conn,
	}, nil
}

// Addr returns the health listener address for the worker.
func (w *Worker) Addr() string {
	if w == nil || w.listener == nil {
		return ""
	}
	return w.listener.Addr().String()
}

// Run creates and serves a worker until context cancellation.
func Run(ctx context.Context, port int) error {
	worker, err := New(ctx, port)
	if err != nil {
		return err
	}
	return worker.Serve(ctx)
}

// Serve consumes events and serves health checks until context cancellation
// or a broker failure.
func (w *Worker) Serve(ctx context.Context) error {
	if w == nil {
		return errors.New("worker is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer w.Close()

	log.Printf("worker health endpoint listening at %v", w.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- w.grpcServer.Serve(w.listener)
	}()
	consumeErr := make(chan error, 1)
	go func() {
		consumeErr <- w.consume(ctx)
	}()

	select {
	case <-ctx.Done():
		if w.health != nil {
			w.health.Shutdown()
		}
		w.grpcServer.GracefulStop()
		<-serveErr
		// An in-flight delivery may still be in its handler; the store and
		// broker connection stay open until the consume loop drains.
		<-consumeErr
		return nil
	case err := <-consumeErr:
		if err != nil {
			return fmt.Errorf("consume events: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve health endpoint: %w", err)
	}
}

// Close releases worker resources.
func (w *Worker) Close() {
	if w == nil {
		return
	}
	if w.health != nil {
		w.health.Shutdown()
	}
	if w.grpcServer != nil {
		w.grpcServer.Stop()
	}
	if w.listener != nil {
		_ = w.listener.Close()
	}
	if w.amqpConn != nil {
		if err := w.amqpConn.Close(); err != nil {
			log.Printf("close amqp connection: %v", err)
		}
	}
	if w.closeStore != nil {
		if err := w.closeStore(); err != nil {
			log.Printf("close project store: %v", err)
		}
	}
}

func openProjectStore(ctx context.Context, env workerEnv) (storage.ProjectStore, func() error, error) {
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
