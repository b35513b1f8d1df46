package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
)

const entryTuple = `{"name":"entry","type":"tuple","internalType":"struct IRegistry.Entry","components":[
	{"name":"owner","type":"address"},{"name":"tags","type":"bytes32[]"}]}`

var registryABI = `[
  {"type":"constructor","inputs":[]},
  {"type":"function","name":"get","stateMutability":"view",
   "inputs":[{"name":"id","type":"uint256"}],
   "outputs":[{"name":"","type":"tuple","internalType":"struct IRegistry.Entry","components":[
     {"name":"owner","type":"address"},{"name":"tags","type":"bytes32[]"}]}]},
  {"type":"function","name":"get","stateMutability":"view",
   "inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint8"}],
   "outputs":[{"name":"a","type":"uint256"},{"name":"","type":"bool"}]},
  {"type":"function","name":"register","stateMutability":"payable",
   "inputs":[` + entryTuple + `,{"name":"","type":"uint8[2][]"}],"outputs":[]},
  {"type":"function","name":"count","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"touch","stateMutability":"view","inputs":[],"outputs":[]},
  {"type":"function","name":"ping","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"event","name":"Registered","anonymous":false,"inputs":[
    {"name":"owner","type":"address","indexed":true},
    {"name":"label","type":"string","indexed":true},
    {"name":"entry","type":"tuple","internalType":"struct IRegistry.Entry","indexed":false,"components":[
      {"name":"owner","type":"address"},{"name":"tags","type":"bytes32[]"}]},
    {"name":"","type":"uint256","indexed":false}]},
  {"type":"error","name":"NotOwner","inputs":[{"name":"caller","type":"address"}]}
]`

func loadABI(t *testing.T, name, doc string) *entity.ContractABI {
	t.Helper()
	entries, raw, err := entity.ParseABI([]byte(doc))
	require.NoError(t, err)
	return &entity.ContractABI{Name: name, Entries: entries, Raw: raw}
}

// generatedFile summarizes the declarations of a generated source file.
type generatedFile struct {
	src     string
	structs map[string][]string
	funcs   map[string]string
}

func parseGenerated(t *testing.T, src []byte) generatedFile {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, 0)
	require.NoError(t, err)

	out := generatedFile{
		src:     string(src),
		structs: make(map[string][]string),
		funcs:   make(map[string]string),
	}
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}
				var fields []string
				for _, fl := range st.Fields.List {
					typ := types.ExprString(fl.Type)
					if len(fl.Names) == 0 {
						fields = append(fields, typ)
					}
					for _, n := range fl.Names {
						fields = append(fields, n.Name+" "+typ)
					}
				}
				out.structs[ts.Name.Name] = fields
			}
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				name = types.ExprString(d.Recv.List[0].Type) + "." + name
			}
			out.funcs[name] = types.ExprString(d.Type)
		}
	}
	return out
}

func TestGenerateContract_Shapes(t *testing.T) {
	g := NewGenerator("", nil)
	src, err := g.GenerateContract("registry", loadABI(t, "Registry", registryABI), false)
	require.NoError(t, err)
	file := parseGenerated(t, src)

	assert.True(t, strings.HasPrefix(file.src, "// Code generated by sdkgen. DO NOT EDIT."))
	assert.Contains(t, file.src, "package registry")
	assert.Contains(t, file.src, `"oracle-sdk/pkg/contract"`)
	assert.NotContains(t, file.src, `"oracle-sdk/pkg/hooks"`)
	assert.Contains(t, file.src, "const RegistryABI = `[{\"type\":\"constructor\"")

	assert.Equal(t, []string{"Owner common.Address", "Tags [][32]byte"}, file.structs["IRegistryEntry"])
	assert.Equal(t, []string{"Id *big.Int"}, file.structs["GetRequest"])
	assert.Equal(t, []string{"Result IRegistryEntry"}, file.structs["GetResponse"])
	assert.Equal(t, []string{"Owner common.Address", "Index uint8"}, file.structs["GetAddressUint8Request"])
	assert.Equal(t, []string{"A *big.Int", "Out1 bool"}, file.structs["GetAddressUint8Response"])
	assert.Equal(t, []string{"Entry IRegistryEntry", "Arg1 [][2]uint8", "TxValue *big.Int"}, file.structs["RegisterRequest"])
	assert.Equal(t, []string{"Result uint64"}, file.structs["CountResponse"])
	assert.Empty(t, file.structs["TouchResponse"])
	assert.Contains(t, file.structs, "TouchResponse")
	assert.NotContains(t, file.structs, "CountRequest")
	assert.NotContains(t, file.structs, "PingRequest")
	assert.Equal(t, []string{
		"Owner common.Address", "Label common.Hash", "Entry IRegistryEntry", "Arg3 *big.Int", "Raw types.Log",
	}, file.structs["RegistryRegistered"])
	assert.Equal(t, []string{"*RegistryReadOnlyClient"}, file.structs["RegistryClient"])

	assert.Equal(t, "func(ctx context.Context, req GetRequest) (*GetResponse, error)", file.funcs["*RegistryReadOnlyClient.Get"])
	assert.Equal(t, "func(ctx context.Context) (*CountResponse, error)", file.funcs["*RegistryReadOnlyClient.Count"])
	assert.Equal(t, "func(ctx context.Context, req RegisterRequest) (*types.Transaction, error)", file.funcs["*RegistryClient.Register"])
	assert.Equal(t, "func(ctx context.Context) (*types.Transaction, error)", file.funcs["*RegistryClient.Ping"])
	assert.Equal(t,
		"func(ctx context.Context, opts *contract.FilterOpts, owner []common.Address, label []string) ([]*RegistryRegistered, error)",
		file.funcs["*RegistryReadOnlyClient.FilterRegistered"],
	)
	assert.Equal(t, "func(log types.Log) (*RegistryRegistered, error)", file.funcs["*RegistryReadOnlyClient.ParseRegistered"])
	assert.Contains(t, file.funcs, "NewRegistryReadOnlyClient")
	assert.Contains(t, file.funcs, "NewRegistryClient")

	assert.Contains(t, file.src, `c.contract.Call(ctx, "get", req.Id)`)
	assert.Contains(t, file.src, `c.contract.Call(ctx, "get0", req.Owner, req.Index)`)
	assert.Contains(t, file.src, `res.A = *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)`)
	assert.Contains(t, file.src, `res.Out1 = *abi.ConvertType(out[1], new(bool)).(*bool)`)
	assert.Contains(t, file.src, `c.contract.Transact(ctx, req.TxValue, "register", req.Entry, req.Arg1)`)
	assert.Contains(t, file.src, `c.contract.Transact(ctx, nil, "ping")`)
	assert.Contains(t, file.src, `c.contract.FilterLogs(ctx, opts, "Registered", rule0, rule1)`)
}

func TestGenerateContract_Hooks(t *testing.T) {
	g := NewGenerator("example.com/sdk/pkg", nil)
	src, err := g.GenerateContract("registry", loadABI(t, "Registry", registryABI), true)
	require.NoError(t, err)
	file := parseGenerated(t, src)

	assert.Contains(t, file.src, `"example.com/sdk/pkg/hooks"`)
	assert.Contains(t, file.src, `"example.com/sdk/pkg/contract"`)
	assert.Equal(t, "func() *hooks.Query[GetRequest, *GetResponse]", file.funcs["*RegistryReadOnlyClient.UseGet"])
	assert.Equal(t, "func() *hooks.Query[struct{}, *CountResponse]", file.funcs["*RegistryReadOnlyClient.UseCount"])
	assert.Equal(t, "func() *hooks.Query[RegisterRequest, *types.Transaction]", file.funcs["*RegistryClient.UseRegister"])
	assert.Equal(t, "func() *hooks.Query[struct{}, *types.Transaction]", file.funcs["*RegistryClient.UsePing"])
}

func TestGenerateContract_IndexedTupleEvent(t *testing.T) {
	doc := `[{"type":"event","name":"LimitsChanged","anonymous":false,"inputs":[
	  {"name":"limits","type":"tuple","internalType":"struct Limits","indexed":true,"components":[{"name":"max","type":"uint256"}]},
	  {"name":"at","type":"uint256","indexed":false}]}]`
	g := NewGenerator("", nil)
	src, err := g.GenerateContract("vault", loadABI(t, "Vault", doc), false)
	require.NoError(t, err)
	file := parseGenerated(t, src)

	assert.Equal(t, []string{"Limits common.Hash", "At *big.Int", "Raw types.Log"}, file.structs["VaultLimitsChanged"])
	assert.Equal(t,
		"func(ctx context.Context, opts *contract.FilterOpts, limits []common.Hash) ([]*VaultLimitsChanged, error)",
		file.funcs["*VaultReadOnlyClient.FilterLimitsChanged"],
	)
	assert.Contains(t, file.src, `c.contract.UnpackLog(event, "LimitsChanged", log)`)
}

func TestGenerateContract_Deterministic(t *testing.T) {
	g := NewGenerator("", nil)
	abiDoc := loadABI(t, "Registry", registryABI)

	first, err := g.GenerateContract("registry", abiDoc, true)
	require.NoError(t, err)
	second, err := g.GenerateContract("registry", abiDoc, true)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestGenerateContract_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		doc     string
		wantErr error
	}{
		{
			name:    "invalid package",
			pkg:     "my-pkg",
			doc:     `[]`,
			wantErr: domain.ErrInvalidManifest,
		},
		{
			name:    "unsupported type",
			pkg:     "bad",
			doc:     `[{"type":"function","name":"f","stateMutability":"view","inputs":[{"name":"x","type":"fixed128x18"}],"outputs":[]}]`,
			wantErr: domain.ErrUnsupportedType,
		},
		{
			name:    "bad integer size",
			pkg:     "bad",
			doc:     `[{"type":"function","name":"f","stateMutability":"view","inputs":[{"name":"x","type":"uint7"}],"outputs":[]}]`,
			wantErr: domain.ErrUnsupportedType,
		},
		{
			name: "request type collides with struct",
			pkg:  "bad",
			doc: `[{"type":"function","name":"set","stateMutability":"nonpayable",
				"inputs":[{"name":"r","type":"tuple","internalType":"struct SetRequest","components":[{"name":"x","type":"uint8"}]}],"outputs":[]}]`,
			wantErr: domain.ErrNameCollision,
		},
		{
			name: "event type collides with client",
			pkg:  "bad",
			doc:  `[{"type":"event","name":"Client","inputs":[]}]`,
			// RegistryClient is both the event struct and the client type.
			wantErr: domain.ErrNameCollision,
		},
		{
			name:    "event argument named raw",
			pkg:     "bad",
			doc:     `[{"type":"event","name":"E","inputs":[{"name":"raw","type":"uint8","indexed":false}]}]`,
			wantErr: domain.ErrNameCollision,
		},
		{
			name: "hook collides with method",
			pkg:  "bad",
			doc: `[{"type":"function","name":"ping","stateMutability":"view","inputs":[],"outputs":[]},
				{"type":"function","name":"usePing","stateMutability":"view","inputs":[],"outputs":[]}]`,
			wantErr: domain.ErrNameCollision,
		},
		{
			name:    "unnamed tuple component",
			pkg:     "bad",
			doc:     `[{"type":"function","name":"f","stateMutability":"view","inputs":[{"name":"t","type":"tuple","components":[{"name":"","type":"uint8"}]}],"outputs":[]}]`,
			wantErr: domain.ErrUnsupportedType,
		},
	}

	g := NewGenerator("", nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.GenerateContract(tt.pkg, loadABI(t, "Registry", tt.doc), true)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateResources(t *testing.T) {
	g := NewGenerator("", nil)
	src, err := g.GenerateResources("abis", []*entity.ContractABI{
		loadABI(t, "Registry", registryABI),
		loadABI(t, "bond_token", `[{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]}]`),
	})
	require.NoError(t, err)
	file := parseGenerated(t, src)

	assert.Contains(t, file.src, "package abis")
	assert.Contains(t, file.src, "const BondTokenABI = `[{\"type\":\"function\",\"name\":\"decimals\"")
	assert.Less(t, strings.Index(file.src, "const BondTokenABI"), strings.Index(file.src, "const RegistryABI"))
	assert.Contains(t, file.src, `"Registry":  RegistryABI,`)
	assert.Equal(t, "func(name string) (string, bool)", file.funcs["Get"])
}

func TestGenerateResources_Collision(t *testing.T) {
	g := NewGenerator("", nil)
	_, err := g.GenerateResources("abis", []*entity.ContractABI{
		loadABI(t, "bond_token", `[]`),
		loadABI(t, "BondToken", `[]`),
	})
	assert.ErrorIs(t, err, domain.ErrNameCollision)
}

func TestGenerateContract_MatchesCheckedInBindings(t *testing.T) {
	root := filepath.Join("..", "..")
	tests := []struct {
		name   string
		pkg    string
		output string
		hooks  bool
	}{
		{name: "Oracle", pkg: "oracle", output: "pkg/bindings/oracle/oracle.gen.go", hooks: true},
		{name: "ERC20", pkg: "erc20", output: "pkg/bindings/erc20/erc20.gen.go"},
	}

	var abis []*entity.ContractABI
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := os.ReadFile(filepath.Join(root, "abis", tt.name+".json"))
			require.NoError(t, err)
			contractABI := loadABI(t, tt.name, string(doc))
			abis = append(abis, contractABI)

			src, err := NewGenerator("", nil).GenerateContract(tt.pkg, contractABI, tt.hooks)
			require.NoError(t, err)
			checkedIn, err := os.ReadFile(filepath.Join(root, tt.output))
			require.NoError(t, err)

			got, want := parseGenerated(t, src), parseGenerated(t, checkedIn)
			assert.Equal(t, want.structs, got.structs)
			assert.Equal(t, want.funcs, got.funcs)
			assert.Contains(t, want.src, "const "+tt.name+"ABI = `"+string(contractABI.Raw)+"`")
		})
	}

	require.Len(t, abis, 2)
	src, err := NewGenerator("", nil).GenerateResources("abis", abis)
	require.NoError(t, err)
	checkedIn, err := os.ReadFile(filepath.Join(root, "pkg", "abis", "abis.gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(checkedIn), string(src))
}
