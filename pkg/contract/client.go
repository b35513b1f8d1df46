package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"oracle-sdk/internal/metrics"
	"oracle-sdk/pkg/apperrors"
)

const (
	kindCall     = "call"
	kindTransact = "transact"
	kindFilter   = "filter"
)

// FilterOpts bounds a log query. A nil End queries up to the latest block.
type FilterOpts struct {
	Start uint64
	End   *uint64
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithName sets the contract name used in errors, logs and metrics.
func WithName(name string) Option {
	return func(c *Client) {
		c.name = name
	}
}

// Client is a contract bound to an address. Clients created with
// NewReadOnlyClient reject transactions.
type Client struct {
	name     string
	address  common.Address
	abi      *abi.ABI
	bound    *bind.BoundContract
	filterer bind.ContractFilterer
	signer   *bind.TransactOpts
	logger   *zap.Logger
}

// NewReadOnlyClient binds abiJSON to address for calls and log queries.
func NewReadOnlyClient(address common.Address, abiJSON string, backend ReadBackend, opts ...Option) (*Client, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: contract backend is nil", apperrors.ErrInvalidInput)
	}
	return newClient(address, abiJSON, backend, nil, nil, opts...)
}

// NewClient binds abiJSON to address for calls, log queries and transactions
// signed with signer.
func NewClient(address common.Address, abiJSON string, backend Backend, signer *bind.TransactOpts, opts ...Option) (*Client, error) {
	if backend == nil {
		return nil, fmt.Errorf("%w: contract backend is nil", apperrors.ErrInvalidInput)
	}
	if signer == nil || signer.Signer == nil {
		return nil, fmt.Errorf("%w: transacting client needs a signer", apperrors.ErrInvalidInput)
	}
	return newClient(address, abiJSON, backend, backend, signer, opts...)
}

func newClient(
	address common.Address,
	abiJSON string,
	reader ReadBackend,
	transactor bind.ContractTransactor,
	signer *bind.TransactOpts,
	opts ...Option,
) (*Client, error) {
	parsed, err := parseABI(abiJSON)
	if err != nil {
		return nil, err
	}

	c := &Client{
		name:     "contract",
		address:  address,
		abi:      parsed,
		filterer: reader,
		signer:   signer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named(c.name)
	c.bound = bind.NewBoundContract(address, *parsed, reader, transactor, reader)
	return c, nil
}

// Address returns the bound contract address.
func (c *Client) Address() common.Address {
	return c.address
}

// Name returns the contract name.
func (c *Client) Name() string {
	return c.name
}

// ABI returns the parsed ABI.
func (c *Client) ABI() *abi.ABI {
	return c.abi
}

// Call executes a read-only method at the latest block and returns its
// decoded outputs in declaration order.
func (c *Client) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	if _, ok := c.abi.Methods[method]; !ok {
		return nil, fmt.Errorf("%w: %s has no method %q", apperrors.ErrInvalidInput, c.name, method)
	}

	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	metrics.ContractCalls.WithLabelValues(c.name, kindCall, metrics.Status(err)).Inc()
	if err != nil {
		c.logger.Debug("Call failed", zap.String("method", method), zap.Error(err))
		return nil, c.wrap(method, err)
	}
	return out, nil
}

// Transact packs and sends a state-changing method call. value is the amount
// of wei to attach and may be nil.
func (c *Client) Transact(ctx context.Context, value *big.Int, method string, args ...interface{}) (*types.Transaction, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("%w: %s client is read-only", apperrors.ErrInvalidInput, c.name)
	}
	if _, ok := c.abi.Methods[method]; !ok {
		return nil, fmt.Errorf("%w: %s has no method %q", apperrors.ErrInvalidInput, c.name, method)
	}

	opts := *c.signer
	opts.Context = ctx
	opts.Value = value

	tx, err := c.bound.Transact(&opts, method, args...)
	metrics.ContractCalls.WithLabelValues(c.name, kindTransact, metrics.Status(err)).Inc()
	if err != nil {
		c.logger.Debug("Transaction failed", zap.String("method", method), zap.Error(err))
		return nil, c.wrap(method, err)
	}

	c.logger.Info("Transaction sent",
		zap.String("method", method),
		zap.Stringer("hash", tx.Hash()),
	)
	return tx, nil
}

// FilterLogs returns the logs of event matching the indexed-argument query.
// Each query element lists the accepted values of one indexed argument; an
// empty element matches anything.
func (c *Client) FilterLogs(ctx context.Context, opts *FilterOpts, event string, query ...[]interface{}) ([]types.Log, error) {
	ev, ok := c.abi.Events[event]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no event %q", apperrors.ErrInvalidInput, c.name, event)
	}
	if opts == nil {
		opts = &FilterOpts{}
	}

	topics, err := abi.MakeTopics(query...)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid topic query for %s.%s: %v", apperrors.ErrInvalidInput, c.name, event, err)
	}
	if !ev.Anonymous {
		topics = append([][]common.Hash{{ev.ID}}, topics...)
	}

	q := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(opts.Start),
		Addresses: []common.Address{c.address},
		Topics:    topics,
	}
	if opts.End != nil {
		q.ToBlock = new(big.Int).SetUint64(*opts.End)
	}

	logs, err := c.filterer.FilterLogs(ctx, q)
	metrics.ContractCalls.WithLabelValues(c.name, kindFilter, metrics.Status(err)).Inc()
	if err != nil {
		return nil, c.wrap(event, err)
	}
	return logs, nil
}

// UnpackLog decodes log into out, a pointer to a struct whose fields follow
// the camel-cased event argument names.
func (c *Client) UnpackLog(out interface{}, event string, log types.Log) error {
	ev, ok := c.abi.Events[event]
	if !ok {
		return fmt.Errorf("%w: %s has no event %q", apperrors.ErrInvalidInput, c.name, event)
	}

	topics := log.Topics
	if !ev.Anonymous {
		if len(topics) == 0 || topics[0] != ev.ID {
			return fmt.Errorf("%w: log is not a %s.%s event", apperrors.ErrInvalidInput, c.name, event)
		}
		topics = topics[1:]
	}

	if len(log.Data) > 0 {
		if err := c.abi.UnpackIntoInterface(out, event, log.Data); err != nil {
			return fmt.Errorf("%w: failed to decode %s.%s data: %v", apperrors.ErrContractCall, c.name, event, err)
		}
	}

	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if !arg.Indexed {
			continue
		}
		// Indexed tuples only leave their hash in the topic.
		if arg.Type.T == abi.TupleTy {
			arg.Type = topicHashType
		}
		indexed = append(indexed, arg)
	}
	if err := abi.ParseTopics(out, indexed, topics); err != nil {
		return fmt.Errorf("%w: failed to decode %s.%s topics: %v", apperrors.ErrContractCall, c.name, event, err)
	}
	return nil
}

// wrap applies the contract call sentinel, passing deadline errors through as
// timeouts and appending the decoded revert reason when the node returned one.
func (c *Client) wrap(method string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s.%s: %v", apperrors.ErrTimeout, c.name, method, err)
	}
	if reason, ok := decodeRevert(c.abi, err); ok {
		return fmt.Errorf("%w: %s.%s reverted: %s", apperrors.ErrContractCall, c.name, method, reason)
	}
	return fmt.Errorf("%w: %s.%s: %v", apperrors.ErrContractCall, c.name, method, err)
}

var topicHashType, _ = abi.NewType("bytes32", "", nil)

var abiCache sync.Map

// parseABI parses abiJSON once per distinct document.
func parseABI(abiJSON string) (*abi.ABI, error) {
	if cached, ok := abiCache.Load(abiJSON); ok {
		return cached.(*abi.ABI), nil
	}
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse contract ABI: %v", apperrors.ErrInvalidInput, err)
	}
	actual, _ := abiCache.LoadOrStore(abiJSON, &parsed)
	return actual.(*abi.ABI), nil
}
