package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("  aceito ")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, s)

	_, err = ParseStatus("pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatus_UnmarshalJSON_NormalizesCase(t *testing.T) {
	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"confirmado"`), &s))
	assert.Equal(t, StatusConfirmed, s)

	require.NoError(t, json.Unmarshal([]byte(`"EM_ANALISE"`), &s))
	assert.False(t, s.IsValid())
	assert.Equal(t, Display{Label: "Desconhecido", Variant: VariantNeutral}, s.Display())
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range TerminalStatuses {
		assert.True(t, s.IsTerminal(), s)
	}
	for _, s := range []Status{StatusPending, StatusAccepted, StatusConfirmed} {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status  Status
		label   string
		variant Variant
	}{
		{StatusPending, "Solicitado", VariantWarning},
		{StatusAccepted, "Aceito", VariantInfo},
		{StatusConfirmed, "Confirmado", VariantInfo},
		{StatusCompleted, "Concluído", VariantSuccess},
		{StatusCancelled, "Cancelado", VariantDanger},
		{StatusDeclined, "Recusado", VariantDanger},
		{Status(""), "Desconhecido", VariantNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			d := tt.status.Display()
			assert.Equal(t, tt.label, d.Label)
			assert.Equal(t, tt.variant, d.Variant)
		})
	}
}

func TestStatus_DisplayIsDeterministic(t *testing.T) {
	for _, s := range append(AllStatuses, "XYZ") {
		first := s.Display()
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, s.Display())
		}
	}
}
