package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
	domainRepo "oracle-sdk/internal/domain/repository"
	"oracle-sdk/pkg/apperrors"
)

// Compile-time check
var _ domainRepo.ManifestRepository = (*Repository)(nil)

// manifestRaw is the on-disk layout of sdkgen.yaml.
type manifestRaw struct {
	Runtime   string        `yaml:"runtime"`
	Resources *resourcesRaw `yaml:"resources"`
	Contracts []contractRaw `yaml:"contracts"`
}

type resourcesRaw struct {
	Package string `yaml:"package"`
	Output  string `yaml:"output"`
}

type contractRaw struct {
	Name    string `yaml:"name"`
	ABI     string `yaml:"abi"`
	Package string `yaml:"package"`
	Output  string `yaml:"output"`
	Hooks   bool   `yaml:"hooks"`
}

// Repository loads generator manifests from YAML files.
type Repository struct {
	logger *zap.Logger
}

// NewRepository creates a YAML manifest repository.
func NewRepository(logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{logger: logger.Named("ManifestStorage")}
}

// Load reads the manifest at path and resolves its relative paths against
// the manifest directory.
func (r *Repository) Load(path string) (*entity.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: manifest %s", apperrors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to read manifest %s: %v", apperrors.ErrInternal, path, err)
	}

	var raw manifestRaw
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", domain.ErrInvalidManifest, path, err)
	}

	m, err := toManifest(raw, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	r.logger.Debug("Loaded manifest",
		zap.String("path", path),
		zap.Int("contracts", len(m.Contracts)),
		zap.Bool("resources", m.Resources != nil),
	)
	return m, nil
}

// toManifest validates raw and converts it, defaulting package names to the
// lower-cased contract name.
func toManifest(raw manifestRaw, baseDir string) (*entity.Manifest, error) {
	if raw.Resources == nil && len(raw.Contracts) == 0 {
		return nil, fmt.Errorf("%w: nothing to generate", domain.ErrInvalidManifest)
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(baseDir, p)
	}

	m := &entity.Manifest{Runtime: raw.Runtime}
	outputs := make(map[string]string)
	claim := func(output, owner string) error {
		if prev, ok := outputs[output]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", domain.ErrInvalidManifest, prev, owner, output)
		}
		outputs[output] = owner
		return nil
	}

	if raw.Resources != nil {
		if raw.Resources.Package == "" || raw.Resources.Output == "" {
			return nil, fmt.Errorf("%w: resources need a package and an output", domain.ErrInvalidManifest)
		}
		m.Resources = &entity.ResourcesTarget{
			Package: raw.Resources.Package,
			Output:  resolve(raw.Resources.Output),
		}
		if err := claim(m.Resources.Output, "resources"); err != nil {
			return nil, err
		}
	}

	names := make(map[string]bool, len(raw.Contracts))
	for i, c := range raw.Contracts {
		if c.Name == "" || c.ABI == "" || c.Output == "" {
			return nil, fmt.Errorf("%w: contract %d needs a name, an abi and an output", domain.ErrInvalidManifest, i)
		}
		if names[c.Name] {
			return nil, fmt.Errorf("%w: contract %s is listed twice", domain.ErrInvalidManifest, c.Name)
		}
		names[c.Name] = true

		target := entity.ContractTarget{
			Name:    c.Name,
			ABIPath: resolve(c.ABI),
			Package: c.Package,
			Output:  resolve(c.Output),
			Hooks:   c.Hooks,
		}
		if target.Package == "" {
			target.Package = strings.ToLower(c.Name)
		}
		if err := claim(target.Output, c.Name); err != nil {
			return nil, err
		}
		m.Contracts = append(m.Contracts, target)
	}
	return m, nil
}
