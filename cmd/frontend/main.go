package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/you/hello-users/internal/client"
	"github.com/you/hello-users/internal/config"
	"github.com/you/hello-users/internal/httpserver"
	"github.com/you/hello-users/internal/infra"
	transport "github.com/you/hello-users/internal/transport/http"
)

// Version is set during build using ldflags
var Version = "dev"

func main() {
	_ = godotenv.Load()

	app := &cli.Command{
		Name:    "frontend",
		Version: Version,
		Usage:   "Forward requests to the backend and prefix its answer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to YAML configuration file",
				Aliases: []string{"c"},
				Sources: cli.EnvVars("CONFIG_FILE"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd.String("config"))
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print the version information",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					fmt.Printf("frontend version %s\n", cmd.Root().Version)
					return nil
				},
			},
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
	}
	if err := cfg.ValidateFrontend(); err != nil {
		return cli.Exit(fmt.Errorf("invalid configuration: %w", err), 1)
	}

	log := infra.NewLogger(cfg.Logging.Level, cfg.Server.Environment, "frontend", os.Stdout)

	svc := cfg.Backend.Service
	backend, err := client.NewBackendClient(svc.URL, svc.Timeout, svc.MaxBodyBytes)
	if err != nil {
		return cli.Exit(fmt.Errorf("invalid backend url: %w", err), 1)
	}
	handlers := transport.NewFrontendHandlers(backend, log)

	srv, err := httpserver.New(cfg.Server.Address, transport.NewFrontendRouter(handlers, log), httpserver.Timeouts{
		Read:  cfg.Server.ReadTimeout,
		Write: cfg.Server.WriteTimeout,
		Idle:  cfg.Server.IdleTimeout,
	})
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create server: %w", err), 1)
	}

	log.Info("starting server",
		slog.String("addr", srv.Addr()),
		slog.String("backend", backend.HelloURL()))
	if err := srv.Run(ctx); err != nil {
		log.Error("server error", slog.Any("err", err))
		return cli.Exit("server stopped with error", 1)
	}
	log.Info("server stopped")
	return nil
}
