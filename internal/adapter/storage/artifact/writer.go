package artifact

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	domainRepo "oracle-sdk/internal/domain/repository"
	"oracle-sdk/pkg/apperrors"
)

// Compile-time check
var _ domainRepo.ArtifactWriter = (*Writer)(nil)

// Writer stores generated files on disk, creating parent directories.
type Writer struct {
	logger *zap.Logger
}

// NewWriter creates a filesystem writer.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger.Named("ArtifactWriter")}
}

// Write replaces the file at path with content.
func (w *Writer) Write(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory for %s: %v", apperrors.ErrInternal, path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", apperrors.ErrInternal, path, err)
	}
	w.logger.Info("Wrote generated file", zap.String("path", path), zap.Int("bytes", len(content)))
	return nil
}
