// Package contract is the runtime behind the generated contract clients. It
// binds an ABI to an address and a node backend and exposes calls,
// transactions and log queries with SDK error semantics.
package contract

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"oracle-sdk/pkg/apperrors"
)

// ReadBackend is what read-only clients need from a node.
type ReadBackend interface {
	bind.ContractCaller
	bind.ContractFilterer
}

// Backend is what clients that send transactions need from a node.
type Backend interface {
	ReadBackend
	bind.ContractTransactor
}

var _ Backend = (*ethclient.Client)(nil)

// Dial connects to a node. The returned client satisfies Backend.
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to node %s: %v", apperrors.ErrExternalServiceFailure, rpcURL, err)
	}
	return client, nil
}
