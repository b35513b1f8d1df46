package contract

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oracle-sdk/pkg/apperrors"
)

const storeABI = `[
  {"type":"function","name":"getValue","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"setValue","stateMutability":"nonpayable","inputs":[{"name":"v","type":"uint256"}],"outputs":[]},
  {"type":"event","name":"ValueSet","anonymous":false,"inputs":[
    {"name":"who","type":"address","indexed":true},
    {"name":"value","type":"uint256","indexed":false}
  ]},
  {"type":"event","name":"LimitsChanged","anonymous":false,"inputs":[
    {"name":"limits","type":"tuple","indexed":true,"components":[{"name":"max","type":"uint256"}]},
    {"name":"label","type":"string","indexed":true},
    {"name":"at","type":"uint256","indexed":false}
  ]},
  {"type":"error","name":"Unauthorized","inputs":[{"name":"caller","type":"address"}]}
]`

var storeAddr = common.HexToAddress("0x5000000000000000000000000000000000000005")

type fakeBackend struct {
	output    []byte
	callErr   error
	logs      []types.Log
	lastQuery ethereum.FilterQuery
	sent      []*types.Transaction
}

func (f *fakeBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return f.output, f.callErr
}

func (f *fakeBackend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.lastQuery = q
	return f.logs, nil
}

func (f *fakeBackend) SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("not supported")
}

func (f *fakeBackend) HeaderByNumber(context.Context, *big.Int) (*types.Header, error) {
	return &types.Header{}, nil
}

func (f *fakeBackend) PendingCodeAt(context.Context, common.Address) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 0, nil
}

func (f *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}

func (f *fakeBackend) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100000, nil
}

func (f *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)
	return nil
}

type dataError struct {
	data string
}

func (e dataError) Error() string          { return "execution reverted" }
func (e dataError) ErrorData() interface{} { return e.data }

func mustABI(t *testing.T) abi.ABI {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(storeABI))
	require.NoError(t, err)
	return parsed
}

func TestCall_DecodesOutputs(t *testing.T) {
	parsed := mustABI(t)
	out, err := parsed.Methods["getValue"].Outputs.Pack(big.NewInt(42))
	require.NoError(t, err)

	c, err := NewReadOnlyClient(storeAddr, storeABI, &fakeBackend{output: out}, WithName("Store"))
	require.NoError(t, err)
	assert.Equal(t, "Store", c.Name())
	assert.Equal(t, storeAddr, c.Address())

	values, err := c.Call(context.Background(), "getValue")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, big.NewInt(42), values[0])
}

func TestCall_UnknownMethod(t *testing.T) {
	c, err := NewReadOnlyClient(storeAddr, storeABI, &fakeBackend{})
	require.NoError(t, err)

	_, err = c.Call(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCall_Errors(t *testing.T) {
	parsed := mustABI(t)
	caller := common.HexToAddress("0x6000000000000000000000000000000000000006")

	customArgs, err := parsed.Errors["Unauthorized"].Inputs.Pack(caller)
	require.NoError(t, err)
	errID := parsed.Errors["Unauthorized"].ID
	customData := append(append([]byte{}, errID[:4]...), customArgs...)

	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	reasonArgs, err := abi.Arguments{{Type: stringType}}.Pack("not allowed")
	require.NoError(t, err)
	reasonData := append([]byte{0x08, 0xc3, 0x79, 0xa0}, reasonArgs...)

	tests := []struct {
		name        string
		callErr     error
		wantErr     error
		wantMessage string
	}{
		{
			name:        "plain failure",
			callErr:     errors.New("connection reset"),
			wantErr:     apperrors.ErrContractCall,
			wantMessage: "Store.getValue: connection reset",
		},
		{
			name:        "error string revert",
			callErr:     dataError{data: hexutil.Encode(reasonData)},
			wantErr:     apperrors.ErrContractCall,
			wantMessage: "reverted: not allowed",
		},
		{
			name:        "custom error revert",
			callErr:     dataError{data: hexutil.Encode(customData)},
			wantErr:     apperrors.ErrContractCall,
			wantMessage: "reverted: Unauthorized(caller=" + caller.Hex() + ")",
		},
		{
			name:        "undecodable revert data",
			callErr:     dataError{data: "0xdeadbeef"},
			wantErr:     apperrors.ErrContractCall,
			wantMessage: "execution reverted",
		},
		{
			name:        "deadline",
			callErr:     context.DeadlineExceeded,
			wantErr:     apperrors.ErrTimeout,
			wantMessage: "Store.getValue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewReadOnlyClient(storeAddr, storeABI, &fakeBackend{callErr: tt.callErr}, WithName("Store"))
			require.NoError(t, err)

			_, err = c.Call(context.Background(), "getValue")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestFilterLogs_BuildsTopics(t *testing.T) {
	parsed := mustABI(t)
	who := common.HexToAddress("0x7000000000000000000000000000000000000007")
	backend := &fakeBackend{logs: []types.Log{{Address: storeAddr}}}

	c, err := NewReadOnlyClient(storeAddr, storeABI, backend)
	require.NoError(t, err)

	end := uint64(20)
	logs, err := c.FilterLogs(context.Background(), &FilterOpts{Start: 10, End: &end}, "ValueSet", []interface{}{who})
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	q := backend.lastQuery
	assert.Equal(t, []common.Address{storeAddr}, q.Addresses)
	assert.Equal(t, big.NewInt(10), q.FromBlock)
	assert.Equal(t, big.NewInt(20), q.ToBlock)
	require.Len(t, q.Topics, 2)
	assert.Equal(t, []common.Hash{parsed.Events["ValueSet"].ID}, q.Topics[0])
	assert.Equal(t, []common.Hash{common.BytesToHash(who.Bytes())}, q.Topics[1])
}

func TestFilterLogs_NilOptsAndUnknownEvent(t *testing.T) {
	backend := &fakeBackend{}
	c, err := NewReadOnlyClient(storeAddr, storeABI, backend)
	require.NoError(t, err)

	_, err = c.FilterLogs(context.Background(), nil, "ValueSet")
	require.NoError(t, err)
	assert.Nil(t, backend.lastQuery.ToBlock)
	assert.Len(t, backend.lastQuery.Topics, 1)

	_, err = c.FilterLogs(context.Background(), nil, "Missing")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

type valueSet struct {
	Who   common.Address
	Value *big.Int
	Raw   types.Log
}

func TestUnpackLog(t *testing.T) {
	parsed := mustABI(t)
	ev := parsed.Events["ValueSet"]
	who := common.HexToAddress("0x7000000000000000000000000000000000000007")
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(7))
	require.NoError(t, err)

	c, err := NewReadOnlyClient(storeAddr, storeABI, &fakeBackend{})
	require.NoError(t, err)

	log := types.Log{Topics: []common.Hash{ev.ID, common.BytesToHash(who.Bytes())}, Data: data}
	var out valueSet
	require.NoError(t, c.UnpackLog(&out, "ValueSet", log))
	assert.Equal(t, who, out.Who)
	assert.Equal(t, big.NewInt(7), out.Value)

	log.Topics[0] = common.Hash{}
	assert.ErrorIs(t, c.UnpackLog(&out, "ValueSet", log), apperrors.ErrInvalidInput)
}

type limitsChanged struct {
	Limits common.Hash
	Label  common.Hash
	At     *big.Int
	Raw    types.Log
}

func TestUnpackLog_IndexedTuple(t *testing.T) {
	parsed := mustABI(t)
	ev := parsed.Events["LimitsChanged"]
	data, err := ev.Inputs.NonIndexed().Pack(big.NewInt(11))
	require.NoError(t, err)

	limitsHash := crypto.Keccak256Hash([]byte("limits"))
	labelHash := crypto.Keccak256Hash([]byte("daily"))

	c, err := NewReadOnlyClient(storeAddr, storeABI, &fakeBackend{})
	require.NoError(t, err)

	log := types.Log{Topics: []common.Hash{ev.ID, limitsHash, labelHash}, Data: data}
	var out limitsChanged
	require.NoError(t, c.UnpackLog(&out, "LimitsChanged", log))
	assert.Equal(t, limitsHash, out.Limits)
	assert.Equal(t, labelHash, out.Label)
	assert.Equal(t, big.NewInt(11), out.At)
	assert.Equal(t, abi.TupleTy, parsed.Events["LimitsChanged"].Inputs[0].Type.T, "parsed ABI is left untouched")
}

func TestTransact(t *testing.T) {
	parsed := mustABI(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	signer, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	require.NoError(t, err)
	signer.Nonce = big.NewInt(3)
	signer.GasPrice = big.NewInt(1)
	signer.GasLimit = 50000

	backend := &fakeBackend{}
	c, err := NewClient(storeAddr, storeABI, backend, signer, WithName("Store"))
	require.NoError(t, err)

	tx, err := c.Transact(context.Background(), big.NewInt(5), "setValue", big.NewInt(9))
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Equal(t, tx.Hash(), backend.sent[0].Hash())
	assert.Equal(t, storeAddr, *tx.To())
	assert.Equal(t, big.NewInt(5), tx.Value())
	assert.Equal(t, uint64(3), tx.Nonce())
	assert.Equal(t, parsed.Methods["setValue"].ID, tx.Data()[:4])
	assert.Nil(t, signer.Value, "signer options are copied per call")
}

func TestTransact_Rejected(t *testing.T) {
	readOnly, err := NewReadOnlyClient(storeAddr, storeABI, &fakeBackend{})
	require.NoError(t, err)
	_, err = readOnly.Transact(context.Background(), nil, "setValue", big.NewInt(1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = NewClient(storeAddr, storeABI, &fakeBackend{}, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestParseABI_CachesAndRejects(t *testing.T) {
	first, err := parseABI(storeABI)
	require.NoError(t, err)
	second, err := parseABI(storeABI)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = parseABI("{not json")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
