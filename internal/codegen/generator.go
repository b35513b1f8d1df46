// Package codegen renders Go client bindings and ABI resource files from
// Ethereum ABI documents.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"text/template"

	"go.uber.org/zap"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
)

// DefaultRuntime is the import path prefix of the runtime packages generated
// clients depend on.
const DefaultRuntime = "oracle-sdk/pkg"

// Generator renders source files. It holds no per-file state and is safe for
// concurrent use.
type Generator struct {
	runtime string
	logger  *zap.Logger
}

// NewGenerator creates a Generator whose output imports the runtime packages
// under runtime. An empty runtime selects DefaultRuntime.
func NewGenerator(runtime string, logger *zap.Logger) *Generator {
	if runtime == "" {
		runtime = DefaultRuntime
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		runtime: runtime,
		logger:  logger.Named("Codegen"),
	}
}

// GenerateContract renders the client bindings of one contract into package pkg.
func (g *Generator) GenerateContract(pkg string, contractABI *entity.ContractABI, hooks bool) ([]byte, error) {
	if err := checkPackage(pkg); err != nil {
		return nil, err
	}

	model, err := buildModel(pkg, contractABI, g.runtime, hooks)
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", contractABI.Name, err)
	}

	src, err := render(contractTemplate, model)
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", contractABI.Name, err)
	}

	g.logger.Debug("Rendered contract bindings",
		zap.String("contract", model.Contract),
		zap.Int("structs", len(model.Structs)),
		zap.Int("calls", len(model.Calls)),
		zap.Int("transactions", len(model.Transacts)),
		zap.Int("events", len(model.Events)),
	)
	return src, nil
}

type resourceABI struct {
	Name string
	ABI  string
}

type resourcesModel struct {
	Package string
	ABIs    []resourceABI
}

// GenerateResources renders a file embedding every ABI as a string constant
// plus a lookup table keyed by contract name.
func (g *Generator) GenerateResources(pkg string, abis []*entity.ContractABI) ([]byte, error) {
	if err := checkPackage(pkg); err != nil {
		return nil, err
	}

	model := resourcesModel{Package: pkg}
	decls := declared{"All": "lookup table", "Get": "lookup function"}
	for _, a := range abis {
		name := exported(a.Name)
		if err := decls.add(name+"ABI", "ABI constant of "+a.Name); err != nil {
			return nil, err
		}
		model.ABIs = append(model.ABIs, resourceABI{Name: name, ABI: string(a.Raw)})
	}
	sort.Slice(model.ABIs, func(i, j int) bool { return model.ABIs[i].Name < model.ABIs[j].Name })

	src, err := render(resourcesTemplate, model)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Rendered ABI resources", zap.String("package", pkg), zap.Int("count", len(model.ABIs)))
	return src, nil
}

func checkPackage(pkg string) error {
	if !token.IsIdentifier(pkg) || pkg == "_" {
		return fmt.Errorf("%w: %q is not a valid package name", domain.ErrInvalidManifest, pkg)
	}
	return nil
}

// render executes tmpl and gofmts the result.
func render(tmpl *template.Template, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated %s source does not parse: %w", tmpl.Name(), err)
	}
	return src, nil
}
