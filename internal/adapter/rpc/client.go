package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	domainService "oracle-sdk/internal/domain/service"
	"oracle-sdk/internal/metrics"
	"oracle-sdk/pkg/apperrors"

	"github.com/gorilla/websocket"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainService.RPCCaller = (*Client)(nil)

// DefaultTimeout bounds a request when neither the client nor the context sets one.
const DefaultTimeout = 10 * time.Second

// Client is a JSON-RPC 2.0 client speaking HTTP(S) through fasthttp or WS(S) through gorilla/websocket.
type Client struct {
	url     string
	ws      bool
	client  *fasthttp.Client
	timeout time.Duration
	nextID  atomic.Uint64
	logger  *zap.Logger
}

// Request is a JSON-RPC request object.
type Request struct {
	Jsonrpc string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// Response defines the basic structure for a JSON-RPC response.
type Response struct {
	ID      interface{}     `json:"id"`
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Error defines the structure for a JSON-RPC error.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e *Error) Error() string {
	if e.Data == nil {
		return fmt.Sprintf("%d %s", e.Code, e.Message)
	}
	data, ok := e.Data.(string)
	if !ok {
		raw, err := json.Marshal(e.Data)
		if err != nil {
			data = fmt.Sprint(e.Data)
		} else {
			data = string(raw)
		}
	}
	return fmt.Sprintf("%d %s: %s", e.Code, e.Message, data)
}

// ErrorData returns the data member, e.g. the revert payload of a failed call.
func (e *Error) ErrorData() interface{} {
	return e.Data
}

// NewClient creates a JSON-RPC client for rpcURL. A zero timeout selects DefaultTimeout.
func NewClient(rpcURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(rpcURL) == "" {
		return nil, fmt.Errorf("%w: rpc url cannot be empty", apperrors.ErrInvalidInput)
	}
	u, err := url.ParseRequestURI(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rpc url format '%s': %v", apperrors.ErrInvalidInput, rpcURL, err)
	}

	var ws bool
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	case "ws", "wss":
		ws = true
	default:
		return nil, fmt.Errorf("%w: rpc url '%s' has unsupported scheme '%s'", apperrors.ErrInvalidInput, rpcURL, u.Scheme)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		url: rpcURL,
		ws:  ws,
		client: &fasthttp.Client{
			ReadTimeout: timeout,
		},
		timeout: timeout,
		logger:  logger.Named("RPCClient"),
	}, nil
}

// URL returns the endpoint the client talks to.
func (c *Client) URL() string {
	return c.url
}

// Call sends method with params and returns the raw result.
func (c *Client) Call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	payload, err := json.Marshal(Request{
		Jsonrpc: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode %s request: %v", apperrors.ErrInvalidInput, method, err)
	}

	startTime := time.Now()
	var body []byte
	if c.ws {
		body, err = c.roundTripWS(ctx, payload)
	} else {
		body, err = c.roundTripHTTP(ctx, payload)
	}

	var result json.RawMessage
	if err == nil {
		result, err = c.decodeResponse(method, body)
	}

	metrics.RPCLatency.WithLabelValues(method).Observe(time.Since(startTime).Seconds())
	metrics.RPCRequests.WithLabelValues(method, metrics.Status(err)).Inc()

	if err != nil {
		c.logger.Debug("JSON-RPC call failed",
			zap.String("url", c.url), zap.String("method", method), zap.Error(err),
		)
		return nil, err
	}
	return result, nil
}

// effectiveTimeout returns the client timeout shortened by the context deadline.
func (c *Client) effectiveTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if requestTimeout := time.Until(deadline); requestTimeout < timeout {
			timeout = requestTimeout
		}
	}
	return timeout
}

// roundTripHTTP posts payload over HTTP/HTTPS.
func (c *Client) roundTripHTTP(ctx context.Context, payload []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	timeout := c.effectiveTimeout(ctx)
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: http request to %s: %v", apperrors.ErrTimeout, c.url, context.DeadlineExceeded)
	}

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) {
			return nil, fmt.Errorf("%w: http request to %s timed out after %v: %v",
				apperrors.ErrTimeout, c.url, timeout, err,
			)
		}
		return nil, fmt.Errorf("%w: http request to %s failed: %v",
			apperrors.ErrExternalServiceFailure, c.url, err,
		)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: rpc %s returned non-OK http status: %d",
			apperrors.ErrExternalServiceFailure, c.url, resp.StatusCode(),
		)
	}

	// resp is released on return.
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// roundTripWS sends payload over a fresh WS/WSS connection and reads one message back.
func (c *Client) roundTripWS(ctx context.Context, payload []byte) ([]byte, error) {
	timeout := c.effectiveTimeout(ctx)
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: wss request to %s: %v", apperrors.ErrTimeout, c.url, context.DeadlineExceeded)
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: timeout,
	}

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: wss dial to %s timed out: %v", apperrors.ErrTimeout, c.url, err)
		}
		return nil, fmt.Errorf("%w: wss dial to %s failed: %v", apperrors.ErrExternalServiceFailure, c.url, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	_ = conn.SetWriteDeadline(deadline)
	_ = conn.SetReadDeadline(deadline)

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return nil, fmt.Errorf("%w: wss write to %s failed: %v", apperrors.ErrExternalServiceFailure, c.url, err)
	}

	_, message, err := conn.ReadMessage()
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: wss read from %s timed out: %v", apperrors.ErrTimeout, c.url, err)
		}
		return nil, fmt.Errorf("%w: wss read from %s failed: %v", apperrors.ErrExternalServiceFailure, c.url, err)
	}
	return message, nil
}

// decodeResponse checks that body is a successful JSON-RPC response and returns its result.
func (c *Client) decodeResponse(method string, body []byte) (json.RawMessage, error) {
	var rpcResp Response
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("%w: rpc %s returned invalid JSON response to %s: %v",
			apperrors.ErrExternalServiceFailure, c.url, method, err,
		)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%w: rpc %s returned json-rpc error to %s: %w",
			apperrors.ErrExternalServiceFailure, c.url, method, rpcResp.Error,
		)
	}

	if rpcResp.Jsonrpc != "2.0" || rpcResp.Result == nil {
		return nil, fmt.Errorf("%w: rpc %s returned invalid JSON-RPC structure to %s",
			apperrors.ErrExternalServiceFailure, c.url, method,
		)
	}

	return rpcResp.Result, nil
}
