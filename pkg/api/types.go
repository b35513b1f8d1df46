package api

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ModuleKind classifies an oracle module by the stage of a request it handles.
type ModuleKind string

const (
	ModuleRequest    ModuleKind = "request"
	ModuleResponse   ModuleKind = "response"
	ModuleDispute    ModuleKind = "dispute"
	ModuleResolution ModuleKind = "resolution"
	ModuleFinality   ModuleKind = "finality"
)

// Module is a deployed oracle module known to the backend.
type Module struct {
	Address     common.Address `json:"address"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Kind        ModuleKind     `json:"kind"`
	Version     string         `json:"version,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// DisputeStatus is the lifecycle stage of a dispute.
type DisputeStatus string

const (
	DisputeNone         DisputeStatus = "None"
	DisputeActive       DisputeStatus = "Active"
	DisputeEscalated    DisputeStatus = "Escalated"
	DisputeWon          DisputeStatus = "Won"
	DisputeLost         DisputeStatus = "Lost"
	DisputeNoResolution DisputeStatus = "NoResolution"
)

// Dispute is a dispute raised against a response.
type Dispute struct {
	ID         common.Hash    `json:"id"`
	RequestID  common.Hash    `json:"requestId"`
	ResponseID common.Hash    `json:"responseId"`
	Disputer   common.Address `json:"disputer"`
	Proposer   common.Address `json:"proposer"`
	Status     DisputeStatus  `json:"status"`
	Bond       *big.Int       `json:"bond"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// DisputeFilter narrows a dispute listing. Zero fields are not sent.
type DisputeFilter struct {
	RequestID string
	Status    DisputeStatus
	Page      int
	Limit     int
}
