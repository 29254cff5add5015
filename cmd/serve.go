package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/killallgit/podcast-api/api"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the Podcast API server with the configured settings.

The database schema is migrated before the server starts listening.

Example:
  podcast-api serve
  podcast-api serve --port 9090
  podcast-api serve --host 0.0.0.0 --port 8080`,
		RunE: runServer,
	}

	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", 0, "server port (overrides config)")
	return serveCmd
}

func runServer(cmd *cobra.Command, args []string) error {
	serverHost, _ := cmd.Flags().GetString("host")
	serverPort, _ := cmd.Flags().GetInt("port")

	cfg := *appConfig
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return err
	}

	authService, err := newAuthService()
	if err != nil {
		return err
	}

	publishBuildInfo()

	logger := logrus.StandardLogger()
	server := api.NewServer(&cfg, api.NewDependencies(db, &cfg, authService, logger))
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	logger.WithFields(logrus.Fields{
		"addr":        server.Addr(),
		"environment": cfg.Environment,
		"version":     Version,
	}).Info("server started")

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case err := <-serverErr:
		if err != nil {
			logger.WithError(err).Error("server error")
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return err
	}

	logger.Info("server gracefully stopped")
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
