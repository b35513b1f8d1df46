package port

import "context"

// GenerateOptions selects what a generation run produces.
type GenerateOptions struct {
	ManifestPath string
	// Runtime overrides the runtime import prefix from the manifest when set.
	Runtime   string
	Clients   bool
	Resources bool
}

// GeneratedFile is one file written by a generation run.
type GeneratedFile struct {
	Kind string
	Name string
	Path string
	Size int
}

// GenerationService defines the interface for turning a manifest into source files.
type GenerationService interface {
	// Generate renders and writes the files selected by opts.
	Generate(ctx context.Context, opts GenerateOptions) ([]GeneratedFile, error)
}
