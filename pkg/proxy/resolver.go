// Package proxy detects upgradeable proxies by reading the EIP-1967
// implementation slot of a contract.
package proxy

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"oracle-sdk/internal/adapter/rpc"
	"oracle-sdk/internal/adapter/storage/memory"
	"oracle-sdk/internal/config"
	"oracle-sdk/internal/domain/entity"
	domainService "oracle-sdk/internal/domain/service"
	"oracle-sdk/pkg/apperrors"
)

// ImplementationSlot is the EIP-1967 storage slot holding the implementation
// address: bytes32(uint256(keccak256("eip1967.proxy.implementation")) - 1).
var ImplementationSlot = common.HexToHash("0x360894a13ba1a3210667c828492db98dca3e2076cc3735a920a3ca505d382bbc")

// Resolution is the outcome of resolving one address.
type Resolution = entity.ProxyResolution

// Result pairs a resolution with the error that prevented it, if any.
type Result struct {
	Resolution Resolution
	Err        error
}

// Cache stores resolutions between lookups.
type Cache interface {
	GetResolution(ctx context.Context, address common.Address) (Resolution, bool, error)
	// SetResolution stores resolution for ttl. A non-positive ttl selects the cache default.
	SetResolution(ctx context.Context, resolution Resolution, ttl time.Duration) error
}

// Resolver reads implementation slots through a JSON-RPC node.
type Resolver struct {
	caller     domainService.RPCCaller
	cache      Cache
	cacheTTL   time.Duration
	cacheSet   bool
	maxWorkers int
	logger     *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache replaces the default in-memory cache. Passing nil disables caching.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(r *Resolver) {
		r.cache = cache
		r.cacheTTL = ttl
		r.cacheSet = true
	}
}

// WithMaxWorkers bounds the number of concurrent reads performed by ResolveAll.
func WithMaxWorkers(n int) Option {
	return func(r *Resolver) {
		r.maxWorkers = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a Resolver for the node at rpcURL.
func NewResolver(rpcURL string, timeout time.Duration, opts ...Option) (*Resolver, error) {
	r := newResolver(nil, opts...)
	caller, err := rpc.NewClient(rpcURL, timeout, r.logger)
	if err != nil {
		return nil, err
	}
	r.caller = caller
	return r, nil
}

// NewResolverWithCaller creates a Resolver on top of an existing JSON-RPC caller.
func NewResolverWithCaller(caller domainService.RPCCaller, opts ...Option) *Resolver {
	return newResolver(caller, opts...)
}

func newResolver(caller domainService.RPCCaller, opts ...Option) *Resolver {
	r := &Resolver{
		caller:     caller,
		maxWorkers: 8,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.cacheSet {
		r.cache = memory.NewCacheRepository(config.CacheConfig{
			DefaultExpiration: 10 * time.Minute,
			CleanupInterval:   time.Hour,
		}, r.logger)
	}
	r.logger = r.logger.Named("ProxyResolver")
	return r
}

// ParseAddress validates a hex address.
func ParseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %q is not a hex address", apperrors.ErrInvalidInput, raw)
	}
	return common.HexToAddress(raw), nil
}

// Resolve reads the implementation slot of address. A zero slot means the
// contract is not a proxy and the address is its own implementation.
func (r *Resolver) Resolve(ctx context.Context, address common.Address) (Resolution, error) {
	if r.cache != nil {
		if res, found, err := r.cache.GetResolution(ctx, address); err != nil {
			r.logger.Warn("Cache error when getting resolution", zap.Stringer("address", address), zap.Error(err))
		} else if found {
			return res, nil
		}
	}

	raw, err := r.caller.Call(ctx, "eth_getStorageAt", address, ImplementationSlot, "latest")
	if err != nil {
		if errors.Is(err, apperrors.ErrTimeout) {
			return Resolution{}, err
		}
		return Resolution{}, fmt.Errorf("%w: failed to read implementation slot of %s: %v",
			apperrors.ErrExternalServiceFailure, address.Hex(), err,
		)
	}

	res, err := decodeSlot(address, raw)
	if err != nil {
		return Resolution{}, err
	}

	r.logger.Debug("Resolved address",
		zap.Stringer("address", address),
		zap.Bool("isProxy", res.IsProxy),
		zap.Stringer("implementation", res.Implementation),
	)

	if r.cache != nil {
		if err := r.cache.SetResolution(ctx, res, r.cacheTTL); err != nil {
			r.logger.Error("Failed to cache resolution", zap.Stringer("address", address), zap.Error(err))
		}
	}
	return res, nil
}

// ResolveAll resolves addresses concurrently on a bounded worker pool. Results
// keep the order of addresses; a failed address carries its error.
func (r *Resolver) ResolveAll(ctx context.Context, addresses []common.Address) []Result {
	results := make([]Result, len(addresses))
	if len(addresses) == 0 {
		return results
	}

	numWorkers := r.maxWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if numWorkers > len(addresses) {
		numWorkers = len(addresses)
	}

	jobs := make(chan int, len(addresses))
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for index := range jobs {
				if err := ctx.Err(); err != nil {
					results[index] = Result{Err: fmt.Errorf("%w: resolution of %s cancelled: %v",
						apperrors.ErrTimeout, addresses[index].Hex(), err,
					)}
					continue
				}
				res, err := r.Resolve(ctx, addresses[index])
				results[index] = Result{Resolution: res, Err: err}
			}
			r.logger.Debug("Resolution worker finished", zap.Int("workerID", workerID))
		}(w)
	}

	for i := range addresses {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// decodeSlot turns the eth_getStorageAt result into a resolution.
func decodeSlot(address common.Address, raw json.RawMessage) (Resolution, error) {
	var word string
	if err := json.Unmarshal(raw, &word); err != nil {
		return Resolution{}, fmt.Errorf("%w: invalid storage word for %s: %v",
			apperrors.ErrExternalServiceFailure, address.Hex(), err,
		)
	}
	if !has0xPrefix(word) {
		return Resolution{}, fmt.Errorf("%w: storage word for %s lacks 0x prefix",
			apperrors.ErrExternalServiceFailure, address.Hex(),
		)
	}
	digits := word[2:]
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	b, err := hex.DecodeString(digits)
	if err != nil || len(b) > common.HashLength {
		return Resolution{}, fmt.Errorf("%w: malformed storage word %q for %s",
			apperrors.ErrExternalServiceFailure, word, address.Hex(),
		)
	}

	impl := common.BytesToAddress(b)
	if impl == (common.Address{}) {
		return Resolution{Address: address, Implementation: address}, nil
	}
	return Resolution{Address: address, Implementation: impl, IsProxy: true}, nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
