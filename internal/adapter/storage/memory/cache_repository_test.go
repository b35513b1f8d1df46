package memory

import (
	"context"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oracle-sdk/internal/config"
	"oracle-sdk/internal/domain/entity"
)

func TestCacheRepository_Resolution(t *testing.T) {
	repo := NewCacheRepository(config.CacheConfig{DefaultExpiration: time.Minute, CleanupInterval: time.Minute}, nil)
	ctx := context.Background()
	address := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")

	_, found, err := repo.GetResolution(ctx, address)
	require.NoError(t, err)
	assert.False(t, found)

	want := entity.ProxyResolution{Address: address, Implementation: common.HexToAddress("0x01"), IsProxy: true}
	require.NoError(t, repo.SetResolution(ctx, want, 0))

	got, found, err := repo.GetResolution(ctx, address)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	repo.Flush()
	_, found, _ = repo.GetResolution(ctx, address)
	assert.False(t, found)
}

func TestCacheRepository_Expiry(t *testing.T) {
	repo := NewCacheRepository(config.CacheConfig{DefaultExpiration: time.Hour, CleanupInterval: time.Hour}, nil)
	ctx := context.Background()
	resolution := entity.ProxyResolution{Address: common.HexToAddress("0x02")}

	require.NoError(t, repo.SetResolution(ctx, resolution, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, found, err := repo.GetResolution(ctx, resolution.Address)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResolutionKey(t *testing.T) {
	address := common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	assert.Equal(t, "proxy_resolution_0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", resolutionKey(address))
}
