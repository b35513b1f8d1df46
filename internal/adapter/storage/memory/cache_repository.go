package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"oracle-sdk/internal/config"
	"oracle-sdk/internal/domain/entity"
	domainRepo "oracle-sdk/internal/domain/repository"
	"oracle-sdk/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

// Cache keys
const resolutionKeyPrefix = "proxy_resolution_"

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
type CacheRepository struct {
	cache  *cache.Cache
	logger *zap.Logger
	cfg    config.CacheConfig
}

// NewCacheRepository creates a new in-memory cache repository instance.
func NewCacheRepository(cfg config.CacheConfig, logger *zap.Logger) *CacheRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultExpiration := cfg.GetDefaultExpiration()
	cleanupInterval := cfg.GetCleanupInterval()

	c := cache.New(defaultExpiration, cleanupInterval)
	logger.Debug(
		"Initialized go-cache for memory storage",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval),
	)

	return &CacheRepository{
		cache:  c,
		logger: logger.Named("MemoryCacheStorage"),
		cfg:    cfg,
	}
}

// GetResolution retrieves a cached proxy resolution, returning found status.
func (r *CacheRepository) GetResolution(_ context.Context, address common.Address) (entity.ProxyResolution, bool, error) {
	key := resolutionKey(address)
	if x, found := r.cache.Get(key); found {
		if res, ok := x.(entity.ProxyResolution); ok {
			r.logger.Debug("Memory cache hit", zap.String("key", key))
			metrics.ProxyCacheLookups.WithLabelValues("hit").Inc()
			return res, true, nil
		}
		r.logger.Warn(
			"Memory cache data type mismatch for key",
			zap.String("key", key), zap.Any("type", fmt.Sprintf("%T", x)),
		)
	}
	r.logger.Debug("Memory cache miss", zap.String("key", key))
	metrics.ProxyCacheLookups.WithLabelValues("miss").Inc()
	return entity.ProxyResolution{}, false, nil
}

// SetResolution caches a proxy resolution with a given TTL.
func (r *CacheRepository) SetResolution(_ context.Context, resolution entity.ProxyResolution, ttl time.Duration) error {
	key := resolutionKey(resolution.Address)
	if ttl <= 0 {
		ttl = r.cfg.GetDefaultExpiration()
	}
	r.cache.Set(key, resolution, ttl)
	r.logger.Debug("Memory cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

// Flush drops every cached entry.
func (r *CacheRepository) Flush() {
	r.cache.Flush()
}

// resolutionKey generates the cache key for an address.
func resolutionKey(address common.Address) string {
	return resolutionKeyPrefix + strings.ToLower(address.Hex())
}
