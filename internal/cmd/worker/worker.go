// Package worker parses worker flags and launches the file event consumer.
package worker

import (
	"context"
	"flag"

	entrypoint "github.com/agorahq/agora/internal/platform/cmd"
	server "github.com/agorahq/agora/internal/services/file/app"
)

// Config holds worker command configuration.
type Config struct {
	Port int `env:"AGORA_WORKER_PORT" envDefault:"8089"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The worker health endpoint port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the file event worker.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWorker, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
