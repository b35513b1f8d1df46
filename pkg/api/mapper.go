package api

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	dto "oracle-sdk/pkg/api/dto"
)

// mapModuleKind normalizes the backend's module type ("Request", "request ") to a ModuleKind.
func mapModuleKind(raw string) ModuleKind {
	return ModuleKind(strings.ToLower(strings.TrimSpace(raw)))
}

func unixTime(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

// toModule converts one raw module. Modules without a valid address are rejected.
func toModule(raw dto.ModuleRaw) (Module, bool) {
	if !common.IsHexAddress(raw.Address) {
		return Module{}, false
	}
	return Module{
		Address:     common.HexToAddress(raw.Address),
		Name:        raw.Name,
		Description: raw.Description,
		Kind:        mapModuleKind(raw.Type),
		Version:     raw.Version,
		CreatedAt:   unixTime(raw.CreatedAt),
	}, true
}

// toModules converts raw modules, skipping invalid entries.
func toModules(rawModules []dto.ModuleRaw, logger *zap.Logger) []Module {
	if rawModules == nil {
		return nil
	}
	modules := make([]Module, 0, len(rawModules))
	for _, raw := range rawModules {
		module, ok := toModule(raw)
		if !ok {
			logger.Warn("Skipping module with invalid address", zap.String("rawAddress", raw.Address))
			continue
		}
		modules = append(modules, module)
	}
	return modules
}

// toDisputes converts raw disputes. Malformed addresses, ids and bonds are
// kept as zero values so the listing stays complete.
func toDisputes(rawDisputes []dto.DisputeRaw, logger *zap.Logger) []Dispute {
	if rawDisputes == nil {
		return nil
	}
	disputes := make([]Dispute, 0, len(rawDisputes))
	for _, raw := range rawDisputes {
		var bond *big.Int
		if raw.Bond != "" {
			var ok bool
			bond, ok = new(big.Int).SetString(raw.Bond, 10)
			if !ok {
				logger.Warn("Ignoring malformed dispute bond",
					zap.String("disputeId", raw.ID),
					zap.String("rawBond", raw.Bond),
				)
				bond = nil
			}
		}
		if !common.IsHexAddress(raw.Disputer) || !common.IsHexAddress(raw.Proposer) {
			logger.Warn("Dispute carries an invalid participant address", zap.String("disputeId", raw.ID))
		}

		disputes = append(disputes, Dispute{
			ID:         common.HexToHash(raw.ID),
			RequestID:  common.HexToHash(raw.RequestID),
			ResponseID: common.HexToHash(raw.ResponseID),
			Disputer:   common.HexToAddress(raw.Disputer),
			Proposer:   common.HexToAddress(raw.Proposer),
			Status:     DisputeStatus(raw.Status),
			Bond:       bond,
			CreatedAt:  unixTime(raw.CreatedAt),
		})
	}
	return disputes
}

func toDisputeQuery(filter DisputeFilter) dto.DisputeQueryRaw {
	return dto.DisputeQueryRaw{
		RequestID: filter.RequestID,
		Status:    string(filter.Status),
		Page:      filter.Page,
		Limit:     filter.Limit,
	}
}
