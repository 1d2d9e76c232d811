package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/homology/internal/config"
	"github.com/katalvlaran/homology/internal/metrics"
	chiTransport "github.com/katalvlaran/homology/internal/transport/chi"
	"github.com/katalvlaran/homology/internal/version"
)

func (a *app) serveCmd() *cobra.Command {
	d := config.DefaultConfig()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP analysis service",
		Long: `Starts an HTTP server exposing the engine.

The server exposes:
  POST /v1/betti   - JSON {"points": [[x, y], ...], "radius": r, "split": bool}
  POST /v1/image   - PNG body; query: block, radius, cutoff, connectivity, split
  GET  /healthz    - Health check
  GET  /metrics    - Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parent := cmd.Context()
			if parent == nil {
				parent = context.Background()
			}
			ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info("Starting homology API server",
				zap.String("version", version.Version),
				zap.String("commit", version.Commit),
				zap.String("env", a.cfg.Logging.Env),
			)
			srv := chiTransport.NewServer(*a.cfg, metrics.New(), a.log)

			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("host", d.Server.Host, "HTTP listen host")
	cmd.Flags().Int("port", d.Server.Port, "HTTP listen port")

	return cmd
}
