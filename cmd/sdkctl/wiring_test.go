package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oracle-sdk/internal/config"
	"oracle-sdk/pkg/apperrors"
)

func testConfig() *config.Config {
	return &config.Config{
		RPC:   config.RPCConfig{URL: "http://127.0.0.1:8545", Timeout: time.Second},
		API:   config.APIConfig{BaseURL: "https://backend.example/api", Timeout: time.Second},
		Cache: config.CacheConfig{DefaultExpiration: time.Minute, CleanupInterval: time.Minute},
		Proxy: config.ProxyConfig{MaxWorkers: 2, CacheTTL: time.Minute},
	}
}

func TestNewResolver(t *testing.T) {
	cfg := testConfig()
	r, err := newResolver(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, r)

	cfg.RPC.URL = "ftp://127.0.0.1"
	_, err = newResolver(cfg, zap.NewNop())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestNewAPIClient(t *testing.T) {
	cfg := testConfig()
	c, err := newAPIClient(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, c)

	cfg.API.BaseURL = "backend"
	_, err = newAPIClient(cfg, zap.NewNop())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
