package http

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	handler "oracle-sdk/internal/adapter/handler/http"
)

// RegisterRoutes sets up the inspection routes, metrics and health checks.
func RegisterRoutes(r *router.Router, h *handler.InspectHandler, logger *zap.Logger) {
	logger.Info("Setting up application-specific routes...")

	r.GET("/contracts", h.GetContracts)
	r.GET("/modules", h.GetModules)
	r.GET("/proxies/{address}", h.GetProxy)

	logger.Info("Setting up metrics and health check routes...")
	r.GET("/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
	r.GET("/health", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("OK")
	})

	logger.Info("All routes registered.")
}

// LoggingMiddleware logs every request with its status and duration.
func LoggingMiddleware(next fasthttp.RequestHandler, logger *zap.Logger) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		logger.Info("Request handled",
			zap.ByteString("method", ctx.Method()),
			zap.ByteString("uri", ctx.RequestURI()),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
