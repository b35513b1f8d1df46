package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
)

// method is a contract function as rendered into a client method.
type method struct {
	Name      string
	Key       string
	Signature string
	ReadOnly  bool
	Payable   bool

	// Request is empty for functions without inputs that are not payable.
	Request  string
	Inputs   []field
	Response string
	Outputs  []field
}

// HasRequest reports whether the method takes a request struct.
func (m method) HasRequest() bool {
	return m.Request != ""
}

// HookRequest is the request type argument of the method's hook.
func (m method) HookRequest() string {
	if m.Request == "" {
		return "struct{}"
	}
	return m.Request
}

// filterParam is an indexed event argument accepted by Filter<Event>.
type filterParam struct {
	Ident string
	Type  string
}

// event is a contract event as rendered into a filter/parse pair.
type event struct {
	Name      string
	Key       string
	Signature string
	Type      string
	Fields    []field
	Filters   []filterParam
}

// contractModel is everything the contract template needs.
type contractModel struct {
	Package  string
	Contract string
	ABI      string
	Runtime  string
	Hooks    bool

	Structs   []*structDef
	Calls     []method
	Transacts []method
	Events    []event
}

// buildModel turns a parsed ABI into a contractModel, checking that every
// generated top-level and method name is unique.
func buildModel(pkg string, contractABI *entity.ContractABI, runtime string, hooks bool) (*contractModel, error) {
	model := &contractModel{
		Package:  pkg,
		Contract: exported(contractABI.Name),
		ABI:      string(contractABI.Raw),
		Runtime:  runtime,
		Hooks:    hooks,
	}
	mapper := newTypeMapper()

	decls := make(declared)
	for name, what := range map[string]string{
		model.Contract + "ABI":                    "ABI constant",
		model.Contract + "ReadOnlyClient":         "read-only client",
		model.Contract + "Client":                 "client",
		"New" + model.Contract + "ReadOnlyClient": "constructor",
		"New" + model.Contract + "Client":         "constructor",
	} {
		if err := decls.add(name, what); err != nil {
			return nil, err
		}
	}
	members := make(declared)

	functions := entity.Functions(contractABI.Entries)
	keys := abiKeys(functions)
	names := memberNames(functions)
	for i, fn := range functions {
		m, err := buildMethod(mapper, fn, keys[i], names[i])
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Signature(), err)
		}
		if err := members.add(m.Name, "method for "+fn.Signature()); err != nil {
			return nil, err
		}
		if hooks {
			if err := members.add("Use"+m.Name, "hook for "+fn.Signature()); err != nil {
				return nil, err
			}
		}
		if m.Request != "" {
			if err := decls.add(m.Request, "request of "+fn.Signature()); err != nil {
				return nil, err
			}
		}
		if m.Response != "" {
			if err := decls.add(m.Response, "response of "+fn.Signature()); err != nil {
				return nil, err
			}
		}
		if m.ReadOnly {
			model.Calls = append(model.Calls, m)
		} else {
			model.Transacts = append(model.Transacts, m)
		}
	}

	events := entity.Events(contractABI.Entries)
	keys = abiKeys(events)
	names = memberNames(events)
	for i, ev := range events {
		e, err := buildEvent(mapper, model.Contract, ev, keys[i], names[i])
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", ev.Signature(), err)
		}
		if err := decls.add(e.Type, "event "+ev.Signature()); err != nil {
			return nil, err
		}
		if err := members.add("Filter"+e.Name, "filter for "+ev.Signature()); err != nil {
			return nil, err
		}
		if err := members.add("Parse"+e.Name, "parser for "+ev.Signature()); err != nil {
			return nil, err
		}
		model.Events = append(model.Events, e)
	}

	// Custom errors only need their tuple types; the runtime decodes them from the ABI.
	for _, errEntry := range entity.Errors(contractABI.Entries) {
		for _, in := range errEntry.Inputs {
			if _, err := mapper.goType(in); err != nil {
				return nil, fmt.Errorf("error %s: %w", errEntry.Signature(), err)
			}
		}
	}

	for _, s := range mapper.structs {
		if err := decls.add(s.Name, "struct"); err != nil {
			return nil, err
		}
	}
	model.Structs = mapper.structs
	return model, nil
}

func buildMethod(mapper *typeMapper, fn entity.Entry, key, name string) (method, error) {
	m := method{
		Name:      name,
		Key:       key,
		Signature: fn.Signature(),
		ReadOnly:  fn.IsReadOnly(),
		Payable:   fn.IsPayable(),
	}

	inputs := make([]field, len(fn.Inputs))
	for i, in := range fn.Inputs {
		t, err := mapper.goType(in)
		if err != nil {
			return method{}, err
		}
		inputs[i] = field{Name: paramName(in, i), Type: t}
	}
	m.Inputs = uniqueFields(inputs)
	if m.Payable {
		for i := range m.Inputs {
			if m.Inputs[i].Name == "TxValue" {
				m.Inputs[i].Name = "TxValue" + strconv.Itoa(i)
			}
		}
	}
	if len(fn.Inputs) > 0 || m.Payable {
		m.Request = name + "Request"
	}

	if m.ReadOnly {
		outputs := make([]field, len(fn.Outputs))
		for i, out := range fn.Outputs {
			t, err := mapper.goType(out)
			if err != nil {
				return method{}, err
			}
			outputs[i] = field{Name: outputName(out, i, len(fn.Outputs)), Type: t}
		}
		m.Outputs = uniqueFields(outputs)
		m.Response = name + "Response"
	} else {
		// Outputs of state-changing functions are not available from a transaction,
		// but their tuple types are still generated.
		for _, out := range fn.Outputs {
			if _, err := mapper.goType(out); err != nil {
				return method{}, err
			}
		}
	}
	return m, nil
}

func buildEvent(mapper *typeMapper, contractName string, ev entity.Entry, key, name string) (event, error) {
	e := event{
		Name:      name,
		Key:       key,
		Signature: ev.Signature(),
		Type:      contractName + name,
	}

	seen := make(map[string]bool, len(ev.Inputs))
	idents := make(map[string]bool, len(ev.Inputs))
	for i, in := range ev.Inputs {
		t, err := mapper.eventFieldType(in)
		if err != nil {
			return event{}, err
		}
		fieldName := paramName(in, i)
		if fieldName == "Raw" || seen[fieldName] {
			return event{}, fmt.Errorf("%w: argument %q of event %s", domain.ErrNameCollision, fieldName, ev.Name)
		}
		seen[fieldName] = true
		e.Fields = append(e.Fields, field{Name: fieldName, Type: t})

		if in.Indexed {
			ft, err := mapper.filterType(in)
			if err != nil {
				return event{}, err
			}
			e.Filters = append(e.Filters, filterParam{Ident: localIdent(fieldName, idents), Type: ft})
		}
	}
	return e, nil
}

// abiLiteral renders the ABI document as a Go string literal.
func abiLiteral(doc string) string {
	if strings.Contains(doc, "`") {
		return strconv.Quote(doc)
	}
	return "`" + doc + "`"
}
