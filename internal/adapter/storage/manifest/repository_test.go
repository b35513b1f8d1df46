package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oracle-sdk/internal/domain"
	"oracle-sdk/pkg/apperrors"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sdkgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
runtime: example.com/sdk/pkg
resources:
  package: abis
  output: pkg/abis/abis.gen.go
contracts:
  - name: Oracle
    abi: abis/Oracle.json
    output: pkg/bindings/oracle/oracle.gen.go
    hooks: true
  - name: BondToken
    abi: /abs/ERC20.json
    package: erc20
    output: pkg/bindings/erc20/erc20.gen.go
`)
	dir := filepath.Dir(path)

	m, err := NewRepository(nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "example.com/sdk/pkg", m.Runtime)
	require.NotNil(t, m.Resources)
	assert.Equal(t, "abis", m.Resources.Package)
	assert.Equal(t, filepath.Join(dir, "pkg/abis/abis.gen.go"), m.Resources.Output)

	require.Len(t, m.Contracts, 2)
	assert.Equal(t, "oracle", m.Contracts[0].Package)
	assert.Equal(t, filepath.Join(dir, "abis/Oracle.json"), m.Contracts[0].ABIPath)
	assert.True(t, m.Contracts[0].Hooks)
	assert.Equal(t, "erc20", m.Contracts[1].Package)
	assert.Equal(t, "/abs/ERC20.json", m.Contracts[1].ABIPath)
	assert.False(t, m.Contracts[1].Hooks)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "nothing to generate", content: "runtime: x\n"},
		{name: "unknown field", content: "contracts:\n  - name: A\n    abi: a.json\n    output: a.go\n    extra: 1\n"},
		{name: "missing abi", content: "contracts:\n  - name: A\n    output: a.go\n"},
		{name: "duplicate name", content: "contracts:\n  - {name: A, abi: a.json, output: a.go}\n  - {name: A, abi: b.json, output: b.go}\n"},
		{name: "shared output", content: "contracts:\n  - {name: A, abi: a.json, output: x.go}\n  - {name: B, abi: b.json, output: x.go}\n"},
		{name: "resources without package", content: "resources:\n  output: abis.go\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepository(nil).Load(writeManifest(t, tt.content))
			assert.ErrorIs(t, err, domain.ErrInvalidManifest)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := NewRepository(nil).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
