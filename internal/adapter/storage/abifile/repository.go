package abifile

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"oracle-sdk/internal/domain/entity"
	domainRepo "oracle-sdk/internal/domain/repository"
	"oracle-sdk/pkg/apperrors"
)

// Compile-time check
var _ domainRepo.ABIRepository = (*Repository)(nil)

// Repository reads ABI documents from the local filesystem.
type Repository struct {
	logger *zap.Logger
}

// NewRepository creates a filesystem ABI repository.
func NewRepository(logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{logger: logger.Named("ABIStorage")}
}

// Load reads and parses the ABI document at path.
func (r *Repository) Load(ctx context.Context, name, path string) (*entity.ContractABI, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: loading ABI %s: %v", apperrors.ErrTimeout, name, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: ABI file %s for %s", apperrors.ErrNotFound, path, name)
		}
		return nil, fmt.Errorf("%w: failed to read ABI file %s: %v", apperrors.ErrInternal, path, err)
	}

	entries, compact, err := entity.ParseABI(raw)
	if err != nil {
		r.logger.Error("Failed to parse ABI", zap.String("contract", name), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s (%s): %w", name, path, err)
	}

	r.logger.Debug("Loaded ABI",
		zap.String("contract", name),
		zap.String("path", path),
		zap.Int("entries", len(entries)),
	)
	return &entity.ContractABI{Name: name, Entries: entries, Raw: compact}, nil
}
