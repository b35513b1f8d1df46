package codegen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
)

var (
	arraySuffix  = regexp.MustCompile(`\[\d*\]`)
	elementaryRe = regexp.MustCompile(`^([a-z]+)(\d*)$`)
)

// field is one member of a generated struct or parameter list.
type field struct {
	Name string
	Type string
}

// structDef is a Go struct generated for an ABI tuple.
type structDef struct {
	Name   string
	Fields []field
	shape  string
}

// splitArrays separates "uint8[2][]" into "uint8" and ["[2]", "[]"].
func splitArrays(t string) (string, []string) {
	idx := strings.IndexByte(t, '[')
	if idx < 0 {
		return t, nil
	}
	return t[:idx], arraySuffix.FindAllString(t[idx:], -1)
}

// typeMapper derives Go types from ABI parameters and collects the structs
// generated for tuples along the way.
type typeMapper struct {
	structs   []*structDef
	byName    map[string][]*structDef
	anonymous []*structDef
}

func newTypeMapper() *typeMapper {
	return &typeMapper{byName: make(map[string][]*structDef)}
}

// goType returns the Go type of p.
func (m *typeMapper) goType(p entity.Param) (string, error) {
	base, arrays := splitArrays(p.Type)
	if strings.Join(arrays, "") != strings.TrimPrefix(p.Type, base) {
		return "", fmt.Errorf("%w: malformed array type %q", domain.ErrUnsupportedType, p.Type)
	}

	var (
		elem string
		err  error
	)
	if base == "tuple" {
		elem, err = m.tupleType(p)
	} else {
		elem, err = elementaryType(base)
	}
	if err != nil {
		return "", err
	}

	// uint8[2][] is a dynamic list of two-element arrays: [][2]uint8.
	for _, a := range arrays {
		elem = a + elem
	}
	return elem, nil
}

// eventFieldType is goType, except that indexed arguments of dynamic or
// composite kind are only available as their topic hash.
func (m *typeMapper) eventFieldType(p entity.Param) (string, error) {
	if p.Indexed && hashedInTopic(p) {
		return "common.Hash", nil
	}
	return m.goType(p)
}

// filterType is the element type accepted for an indexed argument in a
// topic filter. Strings and bytes are hashed by the runtime; other hashed
// kinds must be given as precomputed topics.
func (m *typeMapper) filterType(p entity.Param) (string, error) {
	switch {
	case p.Type == "string":
		return "string", nil
	case p.Type == "bytes":
		return "[]byte", nil
	case hashedInTopic(p):
		return "common.Hash", nil
	default:
		return m.goType(p)
	}
}

func hashedInTopic(p entity.Param) bool {
	base, arrays := splitArrays(p.Type)
	return len(arrays) > 0 || base == "string" || base == "bytes" || base == "tuple"
}

func elementaryType(base string) (string, error) {
	match := elementaryRe.FindStringSubmatch(base)
	if match == nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedType, base)
	}
	kind, sizeText := match[1], match[2]

	switch kind {
	case "address":
		if sizeText == "" {
			return "common.Address", nil
		}
	case "bool":
		if sizeText == "" {
			return "bool", nil
		}
	case "string":
		if sizeText == "" {
			return "string", nil
		}
	case "function":
		if sizeText == "" {
			return "[24]byte", nil
		}
	case "bytes":
		if sizeText == "" {
			return "[]byte", nil
		}
		size, _ := strconv.Atoi(sizeText)
		if size >= 1 && size <= 32 {
			return fmt.Sprintf("[%d]byte", size), nil
		}
	case "uint", "int":
		size := 256
		if sizeText != "" {
			size, _ = strconv.Atoi(sizeText)
		}
		if size < 8 || size > 256 || size%8 != 0 {
			break
		}
		switch size {
		case 8, 16, 32, 64:
			return kind + strconv.Itoa(size), nil
		default:
			return "*big.Int", nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedType, base)
}

// tupleType registers the struct for a tuple parameter and returns its name.
func (m *typeMapper) tupleType(p entity.Param) (string, error) {
	if len(p.Components) == 0 {
		return "", fmt.Errorf("%w: tuple %q has no components", domain.ErrUnsupportedType, p.Name)
	}

	used := make(map[string]bool, len(p.Components))
	fields := make([]field, len(p.Components))
	shape := make([]string, len(p.Components))
	for i, c := range p.Components {
		raw := exported(c.Name)
		if raw == "" {
			return "", fmt.Errorf("%w: tuple %q has an unnamed component", domain.ErrUnsupportedType, p.Name)
		}
		t, err := m.goType(c)
		if err != nil {
			return "", err
		}
		fields[i] = field{Name: overloadedName(raw, used), Type: t}
		shape[i] = fields[i].Name + " " + t
	}

	def := &structDef{Fields: fields, shape: strings.Join(shape, ";")}
	name := structName(p.InternalType)
	if name == "" {
		for _, existing := range m.anonymous {
			if existing.shape == def.shape {
				return existing.Name, nil
			}
		}
		def.Name = "Struct" + strconv.Itoa(len(m.anonymous))
		m.anonymous = append(m.anonymous, def)
		m.structs = append(m.structs, def)
		return def.Name, nil
	}

	variants := m.byName[name]
	for _, existing := range variants {
		if existing.shape == def.shape {
			return existing.Name, nil
		}
	}
	def.Name = name
	if len(variants) > 0 {
		def.Name = name + strconv.Itoa(len(variants))
	}
	m.byName[name] = append(variants, def)
	m.structs = append(m.structs, def)
	return def.Name, nil
}

// structName derives a struct name from a solc internalType such as
// "struct IOracle.Request[]" (IOracleRequest). It returns "" when the
// internal type does not name a struct.
func structName(internalType string) string {
	if !strings.HasPrefix(internalType, "struct ") {
		return ""
	}
	name := strings.TrimPrefix(internalType, "struct ")
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}
	var b strings.Builder
	for _, part := range strings.Split(name, ".") {
		b.WriteString(exported(part))
	}
	return b.String()
}
