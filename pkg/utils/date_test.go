package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "RFC3339 com zona UTC",
			raw:      "2024-03-15T10:30:00Z",
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "RFC3339 com offset é convertido para UTC",
			raw:      "2024-03-15T10:30:00-03:00",
			expected: time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC),
		},
		{
			name:     "Data-hora sem zona",
			raw:      "2024-03-15T10:30:00",
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "Data-hora com espaço como separador",
			raw:      "2024-03-15 10:30:00",
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "Somente a data",
			raw:      "2024-03-15",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Espaços nas bordas são tolerados",
			raw:      "  2024-03-15T10:30:00Z  ",
			expected: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:    "Vazio é rejeitado",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "Texto arbitrário é rejeitado",
			raw:     "ontem de manhã",
			wantErr: true,
		},
		{
			name:    "Epoch em segundos não é aceito",
			raw:     "1710498600",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := ParseTimestamp(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(ts), "esperado %v, obtido %v", tt.expected, ts)
		})
	}
}
