package main

import (
	"go.uber.org/zap"

	"oracle-sdk/internal/adapter/storage/memory"
	"oracle-sdk/internal/config"
	"oracle-sdk/pkg/api"
	"oracle-sdk/pkg/proxy"
)

// newResolver builds a proxy resolver from the rpc, proxy and cache sections.
func newResolver(cfg *config.Config, logger *zap.Logger) (*proxy.Resolver, error) {
	return proxy.NewResolver(cfg.RPC.URL, cfg.RPC.GetTimeout(),
		proxy.WithLogger(logger),
		proxy.WithMaxWorkers(cfg.Proxy.MaxWorkers),
		proxy.WithCache(memory.NewCacheRepository(cfg.Cache, logger), cfg.Proxy.GetCacheTTL()),
	)
}

func newAPIClient(cfg *config.Config, logger *zap.Logger) (*api.Client, error) {
	return api.NewClient(cfg.API.BaseURL, cfg.API.GetTimeout(), logger)
}
