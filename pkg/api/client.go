// Package api is a client for the backend that serves oracle protocol
// metadata: registered modules and disputes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"oracle-sdk/internal/metrics"
	dto "oracle-sdk/pkg/api/dto"
	"oracle-sdk/pkg/apperrors"
)

// DefaultTimeout bounds a request when neither the client nor the context sets one.
const DefaultTimeout = 15 * time.Second

const (
	endpointModules = "modules"
	endpointModule  = "module"
	endpointDispute = "disputes"
)

// Client talks to the backend API over fasthttp.
type Client struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.ParseRequestURI(strings.TrimSpace(baseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("%w: invalid api base url '%s'", apperrors.ErrInvalidInput, baseURL)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		client:  &fasthttp.Client{},
		baseURL: strings.TrimRight(u.String(), "/"),
		timeout: timeout,
		logger:  logger.Named("APIClient"),
	}, nil
}

// ListModules returns every module registered with the backend.
func (c *Client) ListModules(ctx context.Context) ([]Module, error) {
	var envelope dto.Envelope[[]dto.ModuleRaw]
	if err := c.do(ctx, endpointModules, fasthttp.MethodGet, "/modules", nil, &envelope); err != nil {
		return nil, err
	}

	modules := toModules(envelope.Data, c.logger)
	c.logger.Debug("Fetched modules", zap.Int("count", len(modules)))
	return modules, nil
}

// GetModule returns the module deployed at address.
func (c *Client) GetModule(ctx context.Context, address common.Address) (*Module, error) {
	var envelope dto.Envelope[*dto.ModuleRaw]
	path := "/modules/" + strings.ToLower(address.Hex())
	if err := c.do(ctx, endpointModule, fasthttp.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("%w: module %s", apperrors.ErrNotFound, address.Hex())
	}

	module, ok := toModule(*envelope.Data)
	if !ok {
		return nil, fmt.Errorf("%w: backend returned module with invalid address %q",
			apperrors.ErrExternalServiceFailure, envelope.Data.Address,
		)
	}
	return &module, nil
}

// ListDisputes returns the disputes matching filter.
func (c *Client) ListDisputes(ctx context.Context, filter DisputeFilter) ([]Dispute, error) {
	if filter.Page < 0 || filter.Limit < 0 {
		return nil, fmt.Errorf("%w: page and limit must not be negative", apperrors.ErrInvalidInput)
	}

	body, err := json.Marshal(toDisputeQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode dispute filter: %v", apperrors.ErrInvalidInput, err)
	}

	var envelope dto.Envelope[[]dto.DisputeRaw]
	if err := c.do(ctx, endpointDispute, fasthttp.MethodPost, "/disputes", body, &envelope); err != nil {
		return nil, err
	}

	disputes := toDisputes(envelope.Data, c.logger)
	c.logger.Debug("Fetched disputes", zap.Int("count", len(disputes)))
	return disputes, nil
}

// do sends one request and decodes the JSON envelope into out.
func (c *Client) do(ctx context.Context, endpoint, method, path string, payload []byte, out interface{}) (err error) {
	defer func() {
		metrics.APIRequests.WithLabelValues(endpoint, metrics.Status(err)).Inc()
	}()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	target := c.baseURL + path
	req.SetRequestURI(target)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	req.Header.Set(fasthttp.HeaderAcceptEncoding, "gzip")
	if payload != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	timeout := c.timeout
	if deadline, hasDeadline := ctx.Deadline(); hasDeadline {
		if requestTimeout := time.Until(deadline); requestTimeout < timeout {
			timeout = requestTimeout
		}
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: request to %s: %v", apperrors.ErrTimeout, target, context.DeadlineExceeded)
	}

	c.logger.Debug("Sending API request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Duration("timeout", timeout),
	)

	if err := c.client.DoTimeout(req, resp, timeout); err != nil {
		c.logger.Error("Failed to execute API request", zap.String("url", target), zap.Error(err))
		if errors.Is(err, fasthttp.ErrTimeout) {
			return fmt.Errorf("%w: request to %s timed out: %v", apperrors.ErrTimeout, target, err)
		}
		return fmt.Errorf("%w: failed to execute request to %s: %v",
			apperrors.ErrExternalServiceFailure, target, err,
		)
	}

	if resp.StatusCode() == fasthttp.StatusNotFound {
		return fmt.Errorf("%w: backend reported not found (%s)", apperrors.ErrNotFound, target)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("API returned non-OK status",
			zap.String("url", target),
			zap.Int("statusCode", resp.StatusCode()),
			zap.ByteString("body", resp.Body()[:min(1024, len(resp.Body()))]),
		)
		return fmt.Errorf("%w: backend returned status %d for %s",
			apperrors.ErrExternalServiceFailure, resp.StatusCode(), target,
		)
	}

	body := resp.Body()
	if bytes.EqualFold(resp.Header.Peek(fasthttp.HeaderContentEncoding), []byte("gzip")) {
		body, err = resp.BodyGunzip()
		if err != nil {
			return fmt.Errorf("%w: failed to decompress response from %s: %v",
				apperrors.ErrExternalServiceFailure, target, err,
			)
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Failed to unmarshal API response",
			zap.Error(err), zap.ByteString("bodySample", body[:min(1024, len(body))]),
		)
		return fmt.Errorf("%w: failed to parse response from %s: %v",
			apperrors.ErrExternalServiceFailure, target, err,
		)
	}
	return nil
}
