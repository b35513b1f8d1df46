package codegen

import "text/template"

const header = "// Code generated by sdkgen. DO NOT EDIT.\n\n"

var funcs = template.FuncMap{
	"abiLiteral": abiLiteral,
}

var contractTemplate = template.Must(template.New("contract").Funcs(funcs).Parse(header + `package {{.Package}}

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"{{.Runtime}}/contract"
	{{- if .Hooks}}
	"{{.Runtime}}/hooks"
	{{- end}}
)

// Reference imports that a given ABI may leave unused.
var (
	_ = big.NewInt
	_ = common.Big1
	_ = types.BloomLookup
	_ = abi.ConvertType
	_ = context.Background
	{{- if .Hooks}}
	_ = hooks.StatusIdle
	{{- end}}
)

// {{.Contract}}ABI is the ABI of the {{.Contract}} contract.
const {{.Contract}}ABI = {{abiLiteral .ABI}}
{{range .Structs}}
// {{.Name}} is an ABI tuple.
type {{.Name}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{end}}
{{- range .Calls}}
{{- if .HasRequest}}
// {{.Request}} holds the arguments of {{.Signature}}.
type {{.Request}} struct {
{{- range .Inputs}}
	{{.Name}} {{.Type}}
{{- end}}
{{- if .Payable}}
	TxValue *big.Int
{{- end}}
}
{{end}}
// {{.Response}} holds the results of {{.Signature}}.
type {{.Response}} struct {
{{- range .Outputs}}
	{{.Name}} {{.Type}}
{{- end}}
}
{{end}}
{{- range .Transacts}}
{{- if .HasRequest}}
// {{.Request}} holds the arguments of {{.Signature}}.
type {{.Request}} struct {
{{- range .Inputs}}
	{{.Name}} {{.Type}}
{{- end}}
{{- if .Payable}}
	TxValue *big.Int
{{- end}}
}
{{end}}
{{- end}}
{{- range .Events}}
// {{$.Contract}}{{.Name}} is a {{.Signature}} log.
type {{.Type}} struct {
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
	Raw types.Log
}
{{end}}
// {{.Contract}}ReadOnlyClient calls view functions and reads events of the {{.Contract}} contract.
type {{.Contract}}ReadOnlyClient struct {
	contract *contract.Client
}

// New{{.Contract}}ReadOnlyClient binds a read-only client to address.
func New{{.Contract}}ReadOnlyClient(address common.Address, backend contract.ReadBackend, opts ...contract.Option) (*{{.Contract}}ReadOnlyClient, error) {
	c, err := contract.NewReadOnlyClient(address, {{.Contract}}ABI, backend, append([]contract.Option{contract.WithName("{{.Contract}}")}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &{{.Contract}}ReadOnlyClient{contract: c}, nil
}

// {{.Contract}}Client extends {{.Contract}}ReadOnlyClient with state-changing functions.
type {{.Contract}}Client struct {
	*{{.Contract}}ReadOnlyClient
}

// New{{.Contract}}Client binds a client that signs transactions with signer.
func New{{.Contract}}Client(address common.Address, backend contract.Backend, signer *bind.TransactOpts, opts ...contract.Option) (*{{.Contract}}Client, error) {
	c, err := contract.NewClient(address, {{.Contract}}ABI, backend, signer, append([]contract.Option{contract.WithName("{{.Contract}}")}, opts...)...)
	if err != nil {
		return nil, err
	}
	return &{{.Contract}}Client{ {{- .Contract}}ReadOnlyClient: &{{.Contract}}ReadOnlyClient{contract: c}}, nil
}
{{range .Calls}}
// {{.Name}} calls {{.Signature}}.
func (c *{{$.Contract}}ReadOnlyClient) {{.Name}}(ctx context.Context{{if .HasRequest}}, req {{.Request}}{{end}}) (*{{.Response}}, error) {
{{- if .Outputs}}
	out, err := c.contract.Call(ctx, "{{.Key}}"{{range .Inputs}}, req.{{.Name}}{{end}})
	if err != nil {
		return nil, err
	}

	res := new({{.Response}})
{{- range $i, $o := .Outputs}}
	res.{{$o.Name}} = *abi.ConvertType(out[{{$i}}], new({{$o.Type}})).(*{{$o.Type}})
{{- end}}
	return res, nil
{{- else}}
	if _, err := c.contract.Call(ctx, "{{.Key}}"{{range .Inputs}}, req.{{.Name}}{{end}}); err != nil {
		return nil, err
	}
	return new({{.Response}}), nil
{{- end}}
}
{{if $.Hooks}}
// Use{{.Name}} wraps {{.Name}} with loading and error state.
func (c *{{$.Contract}}ReadOnlyClient) Use{{.Name}}() *hooks.Query[{{.HookRequest}}, *{{.Response}}] {
{{- if .HasRequest}}
	return hooks.NewQuery[{{.Request}}, *{{.Response}}](c.{{.Name}})
{{- else}}
	return hooks.NewQuery[struct{}, *{{.Response}}](func(ctx context.Context, _ struct{}) (*{{.Response}}, error) {
		return c.{{.Name}}(ctx)
	})
{{- end}}
}
{{end}}
{{- end}}
{{- range .Transacts}}
// {{.Name}} sends a {{.Signature}} transaction.
func (c *{{$.Contract}}Client) {{.Name}}(ctx context.Context{{if .HasRequest}}, req {{.Request}}{{end}}) (*types.Transaction, error) {
	return c.contract.Transact(ctx, {{if .Payable}}req.TxValue{{else}}nil{{end}}, "{{.Key}}"{{range .Inputs}}, req.{{.Name}}{{end}})
}
{{if $.Hooks}}
// Use{{.Name}} wraps {{.Name}} with loading and error state.
func (c *{{$.Contract}}Client) Use{{.Name}}() *hooks.Query[{{.HookRequest}}, *types.Transaction] {
{{- if .HasRequest}}
	return hooks.NewQuery[{{.Request}}, *types.Transaction](c.{{.Name}})
{{- else}}
	return hooks.NewQuery[struct{}, *types.Transaction](func(ctx context.Context, _ struct{}) (*types.Transaction, error) {
		return c.{{.Name}}(ctx)
	})
{{- end}}
}
{{end}}
{{- end}}
{{- range .Events}}
// Filter{{.Name}} returns the {{.Signature}} logs matching the given indexed values.
func (c *{{$.Contract}}ReadOnlyClient) Filter{{.Name}}(ctx context.Context, opts *contract.FilterOpts{{range .Filters}}, {{.Ident}} []{{.Type}}{{end}}) ([]*{{.Type}}, error) {
{{- range $i, $f := .Filters}}
	var rule{{$i}} []interface{}
	for _, v := range {{$f.Ident}} {
		rule{{$i}} = append(rule{{$i}}, v)
	}
{{- end}}

	logs, err := c.contract.FilterLogs(ctx, opts, "{{.Key}}"{{range $i, $f := .Filters}}, rule{{$i}}{{end}})
	if err != nil {
		return nil, err
	}

	events := make([]*{{.Type}}, 0, len(logs))
	for _, log := range logs {
		event, err := c.Parse{{.Name}}(log)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// Parse{{.Name}} decodes a {{.Signature}} log.
func (c *{{$.Contract}}ReadOnlyClient) Parse{{.Name}}(log types.Log) (*{{.Type}}, error) {
	event := new({{.Type}})
	if err := c.contract.UnpackLog(event, "{{.Key}}", log); err != nil {
		return nil, err
	}
	event.Raw = log
	return event, nil
}
{{end}}`))

var resourcesTemplate = template.Must(template.New("resources").Funcs(funcs).Parse(header + `package {{.Package}}

{{range .ABIs}}
// {{.Name}}ABI is the ABI of the {{.Name}} contract.
const {{.Name}}ABI = {{abiLiteral .ABI}}
{{end}}
// All maps contract names to their ABI.
var All = map[string]string{
{{- range .ABIs}}
	"{{.Name}}": {{.Name}}ABI,
{{- end}}
}

// Get returns the ABI of the named contract.
func Get(name string) (string, bool) {
	abi, ok := All[name]
	return abi, ok
}
`))
