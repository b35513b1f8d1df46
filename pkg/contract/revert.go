package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// decodeRevert extracts a readable reason from the revert data attached to a
// node error. It understands Error(string), Panic(uint256) and the custom
// errors declared in the contract ABI.
func decodeRevert(contractABI *abi.ABI, err error) (string, bool) {
	data, ok := revertData(err)
	if !ok || len(data) < 4 {
		return "", false
	}

	if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
		return reason, true
	}

	var id [4]byte
	copy(id[:], data[:4])
	customErr, lookupErr := contractABI.ErrorByID(id)
	if lookupErr != nil {
		return "", false
	}
	values, unpackErr := customErr.Unpack(data)
	if unpackErr != nil {
		return customErr.Name, true
	}
	return formatCustomError(customErr, values), true
}

// revertData pulls the hex payload out of a JSON-RPC data error.
func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	raw, ok := dataErr.ErrorData().(string)
	if !ok {
		return nil, false
	}
	data, decodeErr := hexutil.Decode(raw)
	if decodeErr != nil {
		return nil, false
	}
	return data, true
}

func formatCustomError(customErr *abi.Error, values interface{}) string {
	fields, ok := values.([]interface{})
	if !ok || len(fields) == 0 {
		return customErr.Name + "()"
	}

	parts := make([]string, len(fields))
	for i, v := range fields {
		name := ""
		if i < len(customErr.Inputs) {
			name = customErr.Inputs[i].Name
		}
		if name != "" {
			parts[i] = fmt.Sprintf("%s=%v", name, v)
		} else {
			parts[i] = fmt.Sprint(v)
		}
	}
	return customErr.Name + "(" + strings.Join(parts, ", ") + ")"
}
