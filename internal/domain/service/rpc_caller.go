package service

import (
	"context"
	"encoding/json"
)

// RPCCaller defines the interface for issuing a single JSON-RPC request.
type RPCCaller interface {
	// Call sends method with params and returns the raw "result" member.
	Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error)
}
