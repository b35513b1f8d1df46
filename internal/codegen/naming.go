package codegen

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
)

// exported returns the Go identifier go-ethereum derives from an ABI name.
func exported(name string) string {
	return abi.ToCamelCase(name)
}

// unexported lowers the first rune of an exported identifier.
func unexported(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// overloadedName mirrors go-ethereum's handling of duplicate tuple component
// names: the first keeps raw, later ones get 0, 1, ... appended.
func overloadedName(raw string, used map[string]bool) string {
	name := raw
	for idx := 0; used[name]; idx++ {
		name = raw + strconv.Itoa(idx)
	}
	used[name] = true
	return name
}

// abiKeys returns the names go-ethereum registers each entry under when it
// parses the ABI, in entry order.
func abiKeys(entries []entity.Entry) []string {
	used := make(map[string]bool, len(entries))
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = abi.ResolveNameConflict(e.Name, func(s string) bool { return used[s] })
		used[keys[i]] = true
	}
	return keys
}

// memberNames assigns Go names to overloaded functions or events. The first
// entry with a given name keeps the plain camel-cased name; later overloads
// append their input types, then a counter if that still clashes.
func memberNames(entries []entity.Entry) []string {
	used := make(map[string]bool, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		name := exported(e.Name)
		if used[name] {
			name += typesSuffix(e.Inputs)
		}
		for idx := 1; used[name]; idx++ {
			name = exported(e.Name) + typesSuffix(e.Inputs) + strconv.Itoa(idx)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

// typesSuffix spells a parameter list as an identifier, e.g. (uint256,address[])
// becomes "Uint256AddressArray".
func typesSuffix(params []entity.Param) string {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(typeWord(p))
	}
	return b.String()
}

func typeWord(p entity.Param) string {
	base, arrays := splitArrays(p.Type)
	var b strings.Builder
	if base == "tuple" {
		b.WriteString("Tuple")
		for _, c := range p.Components {
			b.WriteString(typeWord(c))
		}
	} else {
		b.WriteString(exported(base))
	}
	for _, a := range arrays {
		b.WriteString("Array")
		b.WriteString(strings.Trim(a, "[]"))
	}
	return b.String()
}

// paramName is the exported field name of an input or event argument.
// Unnamed arguments become Arg<i>, matching go-ethereum's arg%d convention.
func paramName(p entity.Param, index int) string {
	if name := exported(p.Name); name != "" {
		return name
	}
	return "Arg" + strconv.Itoa(index)
}

// outputName is the exported field name of a function output.
func outputName(p entity.Param, index, total int) string {
	if name := exported(p.Name); name != "" {
		return name
	}
	if total == 1 {
		return "Result"
	}
	return "Out" + strconv.Itoa(index)
}

// uniqueFields appends an index to repeated field names.
func uniqueFields(fields []field) []field {
	seen := make(map[string]int, len(fields))
	for _, f := range fields {
		seen[f.Name]++
	}
	out := make([]field, len(fields))
	taken := make(map[string]bool, len(fields))
	for i, f := range fields {
		name := f.Name
		if seen[f.Name] > 1 || taken[name] {
			name = f.Name + strconv.Itoa(i)
		}
		taken[name] = true
		out[i] = field{Name: name, Type: f.Type}
	}
	return out
}

// reservedIdents cannot be used as parameter names inside generated method
// bodies: they are locals, imported package names or builtins the bodies use.
var reservedIdents = map[string]bool{
	"c": true, "ctx": true, "opts": true, "logs": true, "log": true, "err": true,
	"event": true, "events": true, "out": true, "v": true, "req": true,
	"abi": true, "big": true, "bind": true, "common": true, "context": true,
	"contract": true, "hooks": true, "types": true,
	"append": true, "len": true, "make": true, "new": true, "nil": true,
	"true": true, "false": true, "error": true, "string": true,
}

// localIdent turns an exported field name into a parameter identifier that
// cannot clash with keywords or the generated method body.
func localIdent(name string, used map[string]bool) string {
	ident := unexported(name)
	if token.IsKeyword(ident) || reservedIdents[ident] || strings.HasPrefix(ident, "rule") {
		ident += "Arg"
	}
	for idx := 0; used[ident]; idx++ {
		ident = unexported(name) + "Arg" + strconv.Itoa(idx)
	}
	used[ident] = true
	return ident
}

// declared tracks top-level identifiers of one generated file.
type declared map[string]string

// add registers name for what, failing when it is taken or not a valid exported identifier.
func (d declared) add(name, what string) error {
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		return fmt.Errorf("%w: %s name %q is not a valid exported Go identifier", domain.ErrNameCollision, what, name)
	}
	if prev, ok := d[name]; ok {
		return fmt.Errorf("%w: %s %q clashes with %s", domain.ErrNameCollision, what, name, prev)
	}
	d[name] = what
	return nil
}
