package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oracle-sdk/internal/domain"
	"oracle-sdk/internal/domain/entity"
)

func TestGoType_Elementary(t *testing.T) {
	tests := []struct {
		abiType string
		want    string
	}{
		{"uint8", "uint8"},
		{"uint16", "uint16"},
		{"uint32", "uint32"},
		{"uint64", "uint64"},
		{"int8", "int8"},
		{"int64", "int64"},
		{"uint24", "*big.Int"},
		{"uint256", "*big.Int"},
		{"uint", "*big.Int"},
		{"int128", "*big.Int"},
		{"address", "common.Address"},
		{"bool", "bool"},
		{"string", "string"},
		{"bytes", "[]byte"},
		{"bytes1", "[1]byte"},
		{"bytes32", "[32]byte"},
		{"function", "[24]byte"},
		{"address[]", "[]common.Address"},
		{"uint8[2][]", "[][2]uint8"},
		{"bytes32[][3]", "[3][][32]byte"},
	}

	for _, tt := range tests {
		t.Run(tt.abiType, func(t *testing.T) {
			got, err := newTypeMapper().goType(entity.Param{Type: tt.abiType})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGoType_Unsupported(t *testing.T) {
	for _, abiType := range []string{"uint0", "uint264", "int12", "bytes0", "bytes33", "fixed", "ufixed128x18", "address20", "uint8[x]", ""} {
		_, err := newTypeMapper().goType(entity.Param{Type: abiType})
		assert.ErrorIs(t, err, domain.ErrUnsupportedType, abiType)
	}
}

func TestGoType_Tuples(t *testing.T) {
	m := newTypeMapper()
	inner := entity.Param{
		Type:         "tuple",
		InternalType: "struct Lib.Inner",
		Components:   []entity.Param{{Name: "value", Type: "uint256"}},
	}
	outer := entity.Param{
		Type:         "tuple[]",
		InternalType: "struct IOracle.Request[]",
		Components: []entity.Param{
			{Name: "_nonce", Type: "uint96"},
			{Name: "inner", Type: "tuple[2]", InternalType: "struct Lib.Inner[2]", Components: inner.Components},
			{Name: "nonce", Type: "bool"},
		},
	}

	got, err := m.goType(outer)
	require.NoError(t, err)
	assert.Equal(t, "[]IOracleRequest", got)

	got, err = m.goType(inner)
	require.NoError(t, err)
	assert.Equal(t, "LibInner", got, "identical shapes share one struct")

	require.Len(t, m.structs, 2)
	assert.Equal(t, "LibInner", m.structs[0].Name)
	assert.Equal(t, []field{
		{Name: "Nonce", Type: "*big.Int"},
		{Name: "Inner", Type: "[2]LibInner"},
		{Name: "Nonce0", Type: "bool"},
	}, m.structs[1].Fields)
}

func TestGoType_TupleNameConflicts(t *testing.T) {
	m := newTypeMapper()
	first := entity.Param{Type: "tuple", InternalType: "struct Point", Components: []entity.Param{{Name: "x", Type: "uint8"}}}
	second := entity.Param{Type: "tuple", InternalType: "struct Point", Components: []entity.Param{{Name: "x", Type: "uint16"}}}
	anonA := entity.Param{Type: "tuple", Components: []entity.Param{{Name: "a", Type: "bool"}}}
	anonB := entity.Param{Type: "tuple", Components: []entity.Param{{Name: "b", Type: "bool"}}}

	for _, tt := range []struct {
		param entity.Param
		want  string
	}{
		{first, "Point"},
		{second, "Point1"},
		{first, "Point"},
		{anonA, "Struct0"},
		{anonB, "Struct1"},
		{anonA, "Struct0"},
	} {
		got, err := m.goType(tt.param)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	assert.Len(t, m.structs, 4)
}

func TestEventAndFilterTypes(t *testing.T) {
	m := newTypeMapper()
	tests := []struct {
		param      entity.Param
		wantField  string
		wantFilter string
	}{
		{entity.Param{Type: "address", Indexed: true}, "common.Address", "common.Address"},
		{entity.Param{Type: "uint256", Indexed: true}, "*big.Int", "*big.Int"},
		{entity.Param{Type: "bytes32", Indexed: true}, "[32]byte", "[32]byte"},
		{entity.Param{Type: "string", Indexed: true}, "common.Hash", "string"},
		{entity.Param{Type: "bytes", Indexed: true}, "common.Hash", "[]byte"},
		{entity.Param{Type: "uint8[3]", Indexed: true}, "common.Hash", "common.Hash"},
		{entity.Param{Type: "tuple", Indexed: true, Components: []entity.Param{{Name: "a", Type: "bool"}}}, "common.Hash", "common.Hash"},
		{entity.Param{Type: "string"}, "string", ""},
	}

	for _, tt := range tests {
		got, err := m.eventFieldType(tt.param)
		require.NoError(t, err)
		assert.Equal(t, tt.wantField, got, tt.param.Type)

		if tt.param.Indexed {
			got, err = m.filterType(tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilter, got, tt.param.Type)
		}
	}
}

func TestStructName(t *testing.T) {
	assert.Equal(t, "IOracleRequest", structName("struct IOracle.Request"))
	assert.Equal(t, "IOracleRequest", structName("struct IOracle.Request[][2]"))
	assert.Equal(t, "Point", structName("struct Point"))
	assert.Equal(t, "", structName("enum IOracle.DisputeStatus"))
	assert.Equal(t, "", structName(""))
}
