package repository

import "oracle-sdk/internal/domain/entity"

// ManifestRepository defines the interface for reading generator manifests.
type ManifestRepository interface {
	// Load reads the manifest at path. Relative paths inside it are resolved against its directory.
	Load(path string) (*entity.Manifest, error)
}

// ArtifactWriter persists generated source files.
type ArtifactWriter interface {
	Write(path string, content []byte) error
}
