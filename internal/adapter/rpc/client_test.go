package rpc

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
	"go.uber.org/zap"

	"oracle-sdk/pkg/apperrors"
)

// serveHTTP starts an in-memory fasthttp server and points c at it.
func serveHTTP(t *testing.T, c *Client, handler fasthttp.RequestHandler) {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() {
		_ = fasthttp.Serve(ln, handler)
	}()
	t.Cleanup(func() { _ = ln.Close() })
	c.client.Dial = func(string) (net.Conn, error) { return ln.Dial() }
}

func TestNewClient_RejectsBadURLs(t *testing.T) {
	for _, raw := range []string{"", "   ", "not a url", "ftp://node.example"} {
		_, err := NewClient(raw, time.Second, zap.NewNop())
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput, raw)
	}
}

func TestClient_CallHTTP(t *testing.T) {
	c, err := NewClient("http://node.example", time.Second, zap.NewNop())
	require.NoError(t, err)

	var got Request
	serveHTTP(t, c, func(ctx *fasthttp.RequestCtx) {
		assert.NoError(t, json.Unmarshal(ctx.PostBody(), &got))
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"jsonrpc":"2.0","id":1,"result":"0x10"}`)
	})

	result, err := c.Call(context.Background(), "eth_getStorageAt", "0xabc", "0x0", "latest")
	require.NoError(t, err)
	assert.JSONEq(t, `"0x10"`, string(result))

	assert.Equal(t, "2.0", got.Jsonrpc)
	assert.Equal(t, "eth_getStorageAt", got.Method)
	assert.Equal(t, []interface{}{"0xabc", "0x0", "latest"}, got.Params)
	assert.NotZero(t, got.ID)
}

func TestClient_CallHTTPSendsEmptyParams(t *testing.T) {
	c, err := NewClient("http://node.example", time.Second, zap.NewNop())
	require.NoError(t, err)

	var body string
	serveHTTP(t, c, func(ctx *fasthttp.RequestCtx) {
		body = string(ctx.PostBody())
		ctx.SetBodyString(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`)
	})

	_, err = c.Call(context.Background(), "eth_blockNumber")
	require.NoError(t, err)
	assert.Contains(t, body, `"params":[]`)
}

func TestClient_CallHTTPErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "non-OK status", status: fasthttp.StatusBadGateway, body: "", wantMsg: "non-OK http status: 502"},
		{name: "invalid json", status: fasthttp.StatusOK, body: "<html>", wantMsg: "invalid JSON response"},
		{name: "json-rpc error", status: fasthttp.StatusOK, body: `{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"invalid argument"}}`, wantMsg: "-32602 invalid argument"},
		{name: "json-rpc error with object data", status: fasthttp.StatusOK, body: `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"header not found","data":{"block":"0x10"}}}`, wantMsg: `-32000 header not found: {"block":"0x10"}`},
		{name: "missing result", status: fasthttp.StatusOK, body: `{"jsonrpc":"2.0","id":1}`, wantMsg: "invalid JSON-RPC structure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient("http://node.example", time.Second, zap.NewNop())
			require.NoError(t, err)
			serveHTTP(t, c, func(ctx *fasthttp.RequestCtx) {
				ctx.SetStatusCode(tt.status)
				ctx.SetBodyString(tt.body)
			})

			_, err = c.Call(context.Background(), "eth_chainId")
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrExternalServiceFailure)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_CallRevertData(t *testing.T) {
	c, err := NewClient("http://node.example", time.Second, zap.NewNop())
	require.NoError(t, err)
	serveHTTP(t, c, func(ctx *fasthttp.RequestCtx) {
		ctx.SetBodyString(`{"jsonrpc":"2.0","id":1,"error":{"code":3,"message":"execution reverted","data":"0x08c379a0"}}`)
	})

	_, err = c.Call(context.Background(), "eth_call")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExternalServiceFailure)
	assert.Contains(t, err.Error(), "3 execution reverted: 0x08c379a0")

	var rpcErr *Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 3, rpcErr.Code)
	assert.Equal(t, "0x08c379a0", rpcErr.ErrorData())
}

func TestClient_CallHTTPExpiredContext(t *testing.T) {
	c, err := NewClient("http://node.example", time.Second, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err = c.Call(ctx, "eth_chainId")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTimeout)
}

func TestClient_CallWS(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req Request
		if json.Unmarshal(msg, &req) != nil {
			return
		}
		resp, _ := json.Marshal(Response{ID: req.ID, Jsonrpc: "2.0", Result: json.RawMessage(`"` + req.Method + `"`)})
		_ = conn.WriteMessage(websocket.TextMessage, resp)
	}))
	defer srv.Close()

	c, err := NewClient("ws"+strings.TrimPrefix(srv.URL, "http"), time.Second, zap.NewNop())
	require.NoError(t, err)

	result, err := c.Call(context.Background(), "eth_chainId")
	require.NoError(t, err)
	assert.JSONEq(t, `"eth_chainId"`, string(result))
}

func TestClient_CallWSDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	srv.Close()

	c, err := NewClient(url, time.Second, zap.NewNop())
	require.NoError(t, err)

	_, err = c.Call(context.Background(), "eth_chainId")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrExternalServiceFailure)
}
