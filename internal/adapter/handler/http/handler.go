package http

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"oracle-sdk/internal/domain/entity"
	"oracle-sdk/pkg/api"
	"oracle-sdk/pkg/apperrors"
	"oracle-sdk/pkg/format"
)

// ProxyResolver resolves EIP-1967 implementation addresses.
type ProxyResolver interface {
	Resolve(ctx context.Context, address common.Address) (entity.ProxyResolution, error)
}

// ModuleLister lists protocol modules from the backend API.
type ModuleLister interface {
	ListModules(ctx context.Context) ([]api.Module, error)
}

// ContractView is a configured contract together with its proxy resolution.
type ContractView struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	Short          string `json:"short"`
	Implementation string `json:"implementation,omitempty"`
	IsProxy        bool   `json:"isProxy"`
	Error          string `json:"error,omitempty"`
}

// InspectHandler serves read-only views over the SDK runtime.
type InspectHandler struct {
	resolver  ProxyResolver
	modules   ModuleLister
	contracts map[string]string
	logger    *zap.Logger
}

// NewInspectHandler creates a handler. contracts maps contract names to configured addresses.
func NewInspectHandler(resolver ProxyResolver, modules ModuleLister, contracts map[string]string, logger *zap.Logger) *InspectHandler {
	return &InspectHandler{
		resolver:  resolver,
		modules:   modules,
		contracts: contracts,
		logger:    logger.Named("InspectHandler"),
	}
}

// GetProxy handles requests resolving the implementation behind one address.
func (h *InspectHandler) GetProxy(ctx *fasthttp.RequestCtx) {
	raw, ok := ctx.UserValue("address").(string)
	if !ok || !format.IsAddress(raw) {
		h.logger.Debug("Invalid address in path", zap.Any("address", ctx.UserValue("address")))
		ctx.Error("Bad Request: Invalid address", fasthttp.StatusBadRequest)
		return
	}

	resolution, err := h.resolver.Resolve(ctx, common.HexToAddress(raw))
	if err != nil {
		h.fail(ctx, "Failed to resolve proxy", err, zap.String("address", raw))
		return
	}
	h.writeJSON(ctx, resolution)
}

// GetContracts handles requests for the configured contracts and their implementations.
func (h *InspectHandler) GetContracts(ctx *fasthttp.RequestCtx) {
	names := make([]string, 0, len(h.contracts))
	for name := range h.contracts {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]ContractView, 0, len(names))
	for _, name := range names {
		view := ContractView{Name: name, Address: h.contracts[name]}
		if !format.IsAddress(view.Address) {
			view.Error = apperrors.ErrInvalidInput.Error()
			views = append(views, view)
			continue
		}

		address := common.HexToAddress(view.Address)
		view.Address = address.Hex()
		view.Short, _ = format.ShortAddress(view.Address, 0, 0)
		resolution, err := h.resolver.Resolve(ctx, address)
		if err != nil {
			h.logger.Warn("Failed to resolve configured contract", zap.String("contract", name), zap.Error(err))
			view.Error = err.Error()
		} else {
			view.IsProxy = resolution.IsProxy
			view.Implementation = resolution.Implementation.Hex()
		}
		views = append(views, view)
	}
	h.writeJSON(ctx, views)
}

// GetModules handles requests for the protocol modules known to the backend.
func (h *InspectHandler) GetModules(ctx *fasthttp.RequestCtx) {
	modules, err := h.modules.ListModules(ctx)
	if err != nil {
		h.fail(ctx, "Failed to list modules", err)
		return
	}
	if modules == nil {
		modules = []api.Module{}
	}
	h.writeJSON(ctx, modules)
}

// fail maps err onto a status code and writes a short error body.
func (h *InspectHandler) fail(ctx *fasthttp.RequestCtx, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		h.logger.Debug(msg, fields...)
		ctx.Error("Bad Request", fasthttp.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		h.logger.Debug(msg, fields...)
		ctx.Error("Not Found", fasthttp.StatusNotFound)
	case errors.Is(err, apperrors.ErrTimeout):
		h.logger.Warn(msg, fields...)
		ctx.Error("Gateway Timeout", fasthttp.StatusGatewayTimeout)
	case errors.Is(err, apperrors.ErrExternalServiceFailure):
		h.logger.Error(msg, fields...)
		ctx.Error("Bad Gateway", fasthttp.StatusBadGateway)
	default:
		h.logger.Error(msg, fields...)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}

func (h *InspectHandler) writeJSON(ctx *fasthttp.RequestCtx, v interface{}) {
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		// Response already started, can't set error code
	}
}
