package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bogun-lab/facildash/pkg/cli/config"
	controller "github.com/bogun-lab/facildash/pkg/controller/http"
	"github.com/bogun-lab/facildash/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		datasetCfg config.Dataset
	)

	flags := joinFlags(
		serverCfg.Flags(),
		datasetCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the dashboard HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting facildash server",
				slog.Any("server", serverCfg),
				slog.Any("dataset", datasetCfg),
			)

			source, err := datasetCfg.Configure(ctx)
			if err != nil {
				return err
			}

			statsUC := usecase.NewStats(source)

			server, err := controller.NewServer(ctx, serverCfg.Addr, statsUC)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
