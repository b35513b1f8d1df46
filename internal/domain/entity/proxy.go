package entity

import "github.com/ethereum/go-ethereum/common"

// ProxyResolution is the outcome of inspecting a contract for an EIP-1967 implementation slot.
type ProxyResolution struct {
	Address        common.Address `json:"address"`
	Implementation common.Address `json:"implementation"`
	IsProxy        bool           `json:"isProxy"`
}
