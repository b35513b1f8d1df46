package main

import (
	"context"
	"time"

	"github.com/fasthttp/router"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	delivery "oracle-sdk/internal/adapter/delivery/http"
	handler "oracle-sdk/internal/adapter/handler/http"
)

const shutdownTimeout = 10 * time.Second

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve contract, module and proxy views over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Server.Port = servePort
		}

		appLogger.Info("Initializing dependencies...")
		resolver, err := newResolver(cfg, appLogger)
		if err != nil {
			return err
		}
		apiClient, err := newAPIClient(cfg, appLogger)
		if err != nil {
			return err
		}
		inspectHandler := handler.NewInspectHandler(resolver, apiClient, cfg.Contracts.Addresses(), appLogger)

		appLogger.Info("Setting up HTTP router...")
		r := router.New()
		delivery.RegisterRoutes(r, inspectHandler, appLogger)

		serverAddr := ":" + cfg.Server.Port
		server := &fasthttp.Server{
			Name:    cfg.App.Name,
			Handler: delivery.LoggingMiddleware(r.Handler, appLogger),
		}

		errCh := make(chan error, 1)
		go func() {
			appLogger.Info("Starting HTTP server", zap.String("address", serverAddr))
			errCh <- server.ListenAndServe(serverAddr)
		}()

		select {
		case err := <-errCh:
			return err
		case <-cmd.Context().Done():
		}

		appLogger.Info("Shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.ShutdownWithContext(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "listen port (overrides config)")
}
