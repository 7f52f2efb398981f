package cmd

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := newApplication(ctx, cfg)
		if err != nil {
			return err
		}
		defer app.Close()

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		server := &http.Server{
			Addr:              net.JoinHostPort("", cfg.Port),
			Handler:           handlers.NewRouter(app.services, app.logger, cfg.CORSOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		}
		return runServer(ctx, server, app)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (overrides PORT)")
}

// runServer serves until ctx is cancelled, then drains in-flight requests.
func runServer(ctx context.Context, server *http.Server, app *application) error {
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("HTTP server listening",
			"addr", server.Addr,
			"storage", app.cfg.Storage,
			"environment", app.cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("Shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	app.logger.Info("HTTP server stopped gracefully")
	return nil
}
