package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddress_FormatStructured(t *testing.T) {
	var a Address
	raw := `{"logradouro":"Rua A","numero":"10","bairro":"Centro","cidade":"São Paulo","uf":"SP","cep":"01000-000"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, "Rua A, 10, Centro, São Paulo - SP, 01000-000", a.Format())
}

func TestAddress_FormatPlainString(t *testing.T) {
	var a Address
	require.NoError(t, json.Unmarshal([]byte(`"Av. Paulista, 1000 - Bela Vista"`), &a))

	assert.Equal(t, "Av. Paulista, 1000 - Bela Vista", a.Format())
}

func TestAddress_FormatSkipsEmptyParts(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{"no number", Address{Street: "Rua B", City: "Recife", State: "PE"}, "Rua B, Recife - PE"},
		{"city only", Address{City: "Natal"}, "Natal"},
		{"empty", Address{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.Format())
		})
	}
}

func TestAddress_NullAndMarshal(t *testing.T) {
	var a Address
	require.NoError(t, json.Unmarshal([]byte(`null`), &a))
	assert.True(t, a.IsZero())

	out, err := json.Marshal(Address{Text: "Rua C"})
	require.NoError(t, err)
	assert.JSONEq(t, `"Rua C"`, string(out))

	out, err = json.Marshal(Address{Street: "Rua A", Number: "10"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"logradouro":"Rua A","numero":"10"}`, string(out))
}
