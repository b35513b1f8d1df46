package repository

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"oracle-sdk/internal/domain/entity"
)

// CacheRepository defines the interface for caching proxy resolutions.
type CacheRepository interface {
	// GetResolution retrieves the cached resolution for address.
	GetResolution(ctx context.Context, address common.Address) (entity.ProxyResolution, bool, error)

	// SetResolution stores a resolution with a specified TTL. A non-positive TTL selects the default.
	SetResolution(ctx context.Context, resolution entity.ProxyResolution, ttl time.Duration) error
}
