// Package project parses project service flags and launches the service.
package project

import (
	"context"
	"flag"

	entrypoint "github.com/agorahq/agora/internal/platform/cmd"
	server "github.com/agorahq/agora/internal/services/project/app"
)

// Config holds project command configuration.
type Config struct {
	Port int `env:"AGORA_PROJECT_PORT" envDefault:"8080"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The project gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the project gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceProject, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
