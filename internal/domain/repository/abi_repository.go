package repository

import (
	"context"

	"oracle-sdk/internal/domain/entity"
)

// ABIRepository defines the interface for reading ABI documents.
type ABIRepository interface {
	// Load reads and parses the ABI stored at path, naming it after the contract.
	Load(ctx context.Context, name, path string) (*entity.ContractABI, error)
}
