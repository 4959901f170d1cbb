package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBand(t *testing.T) {
	scoreBands := []Band[int]{
		{Min: 0, Value: 0},
		{Min: 3, Value: 1},
		{Min: 5, Value: 2},
	}

	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"below first threshold", 0, 0},
		{"just below middle band", 2, 0},
		{"middle band lower edge", 3, 1},
		{"inside middle band", 4, 1},
		{"top band lower edge", 5, 2},
		{"far above top band", 100, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupBand(scoreBands, tt.in))
		})
	}
}

func TestLookupBand_Labels(t *testing.T) {
	bands := []Band[string]{
		{Min: 0, Value: "low"},
		{Min: 0.5, Value: "mid"},
		{Min: 1.0, Value: "high"},
	}

	assert.Equal(t, "low", LookupBand(bands, 0.49))
	assert.Equal(t, "mid", LookupBand(bands, 0.5))
	assert.Equal(t, "high", LookupBand(bands, 1.2))
}

func TestValidateBands(t *testing.T) {
	t.Run("accepts ascending table", func(t *testing.T) {
		bands := []Band[int]{{Min: 0, Value: 0}, {Min: 3, Value: 1}}
		require.NoError(t, ValidateBands(bands))
	})

	t.Run("rejects empty table", func(t *testing.T) {
		err := ValidateBands([]Band[int]{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects unordered table", func(t *testing.T) {
		bands := []Band[int]{{Min: 5, Value: 2}, {Min: 3, Value: 1}}
		err := ValidateBands(bands)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects duplicate bounds", func(t *testing.T) {
		bands := []Band[int]{{Min: 0, Value: 0}, {Min: 0, Value: 1}}
		assert.ErrorIs(t, ValidateBands(bands), ErrInvalidConfig)
	})
}
