package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"oracle-sdk/internal/domain"
)

// EntryKind is the "type" field of an ABI entry.
type EntryKind string

// Known ABI entry kinds.
const (
	KindFunction    EntryKind = "function"
	KindEvent       EntryKind = "event"
	KindError       EntryKind = "error"
	KindConstructor EntryKind = "constructor"
	KindFallback    EntryKind = "fallback"
	KindReceive     EntryKind = "receive"
)

// State mutability values.
const (
	MutabilityPure       = "pure"
	MutabilityView       = "view"
	MutabilityNonPayable = "nonpayable"
	MutabilityPayable    = "payable"
)

// Param is a function, event or error parameter, or a tuple component.
type Param struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	InternalType string  `json:"internalType,omitempty"`
	Indexed      bool    `json:"indexed,omitempty"`
	Components   []Param `json:"components,omitempty"`
}

// Entry is a single ABI descriptor.
type Entry struct {
	Kind            EntryKind `json:"type"`
	Name            string    `json:"name,omitempty"`
	Inputs          []Param   `json:"inputs,omitempty"`
	Outputs         []Param   `json:"outputs,omitempty"`
	StateMutability string    `json:"stateMutability,omitempty"`
	Anonymous       bool      `json:"anonymous,omitempty"`
	Constant        bool      `json:"constant,omitempty"`
	Payable         bool      `json:"payable,omitempty"`
}

// artifact is the compiler output layout used by Hardhat and Foundry.
type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

// ParseABI decodes an ABI document. Both a bare ABI array and a compiler
// artifact object carrying an "abi" field are accepted. It returns the entries
// and the bare ABI array as raw JSON.
func ParseABI(raw []byte) ([]Entry, []byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil, fmt.Errorf("%w: empty document", domain.ErrInvalidABI)
	}

	if trimmed[0] == '{' {
		var art artifact
		if err := json.Unmarshal(trimmed, &art); err != nil {
			return nil, nil, fmt.Errorf("%w: failed to decode artifact: %v", domain.ErrInvalidABI, err)
		}
		if len(art.ABI) == 0 {
			return nil, nil, fmt.Errorf("%w: artifact has no abi field", domain.ErrInvalidABI)
		}
		trimmed = bytes.TrimSpace(art.ABI)
	}

	var entries []Entry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode entries: %v", domain.ErrInvalidABI, err)
	}

	var untyped []int
	for i := range entries {
		if entries[i].Kind == "" {
			entries[i].Kind = KindFunction
			untyped = append(untyped, i)
		}
		switch entries[i].Kind {
		case KindFunction, KindEvent, KindError:
			if entries[i].Name == "" {
				return nil, nil, fmt.Errorf("%w: %s entry %d has no name", domain.ErrInvalidABI, entries[i].Kind, i)
			}
		case KindConstructor, KindFallback, KindReceive:
		default:
			return nil, nil, fmt.Errorf("%w: unknown entry kind %q", domain.ErrInvalidABI, entries[i].Kind)
		}
	}

	if len(untyped) > 0 {
		normalized, err := setFunctionKind(trimmed, untyped)
		if err != nil {
			return nil, nil, err
		}
		trimmed = normalized
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to compact document: %v", domain.ErrInvalidABI, err)
	}

	return entries, compact.Bytes(), nil
}

// setFunctionKind writes "type":"function" into the entries at idx, which
// omitted the field. Other members are carried over as they are.
func setFunctionKind(doc []byte, idx []int) ([]byte, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(doc, &objects); err != nil {
		return nil, fmt.Errorf("%w: failed to decode entries: %v", domain.ErrInvalidABI, err)
	}
	for _, i := range idx {
		objects[i]["type"] = json.RawMessage(`"function"`)
	}
	out, err := json.Marshal(objects)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode entries: %v", domain.ErrInvalidABI, err)
	}
	return out, nil
}

// IsReadOnly reports whether calling the function cannot change state.
func (e Entry) IsReadOnly() bool {
	return e.StateMutability == MutabilityView || e.StateMutability == MutabilityPure ||
		(e.StateMutability == "" && e.Constant)
}

// IsPayable reports whether the function accepts ether.
func (e Entry) IsPayable() bool {
	return e.StateMutability == MutabilityPayable || (e.StateMutability == "" && e.Payable)
}

// Signature returns the canonical signature, e.g. "transfer(address,uint256)".
func (e Entry) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, in := range e.Inputs {
		types[i] = in.CanonicalType()
	}
	return e.Name + "(" + strings.Join(types, ",") + ")"
}

// CanonicalType returns the type with tuples expanded into their component list.
func (p Param) CanonicalType() string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	parts := make([]string, len(p.Components))
	for i, c := range p.Components {
		parts[i] = c.CanonicalType()
	}
	return "(" + strings.Join(parts, ",") + ")" + strings.TrimPrefix(p.Type, "tuple")
}

// Functions returns the function entries in ABI order.
func Functions(entries []Entry) []Entry {
	return filterKind(entries, KindFunction)
}

// Events returns the event entries in ABI order.
func Events(entries []Entry) []Entry {
	return filterKind(entries, KindEvent)
}

// Errors returns the custom error entries in ABI order.
func Errors(entries []Entry) []Entry {
	return filterKind(entries, KindError)
}

func filterKind(entries []Entry, kind EntryKind) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
