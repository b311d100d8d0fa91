package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"numeric passthrough", float64(30), 30},
		{"int passthrough", 30, 30},
		{"minutes suffix", "30m", 30},
		{"hours suffix", "2h", 120},
		{"days suffix", "1d", 1440},
		{"bare number string", "45", 45},
		{"unknown suffix means minutes", "5x", 5},
		{"surrounding whitespace", "  10m  ", 10},
		{"digits before junk", "15 minutes", 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMinutes(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinutesInvalid(t *testing.T) {
	for _, input := range []any{"abc", "", "   ", nil, true} {
		_, err := ParseMinutes(input)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %v", input)
	}
}

func TestParseMinutesIsPure(t *testing.T) {
	first, err := ParseMinutes("2h")
	require.NoError(t, err)
	second, err := ParseMinutes("2h")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAt(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	assert.Equal(t, now.Add(time.Hour), At(now, 60))
	assert.Equal(t, now, At(now, 0))
}
