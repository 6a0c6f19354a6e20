package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  float64
		valid bool
	}{
		{"thousands comma", "10,000", 10000, true},
		{"space separator", "12 000", 12000, true},
		{"currency prefix", "€9,500", 9500, true},
		{"currency suffix", "11000 EUR", 11000, true},
		{"decimal", "10500.50", 10500.50, true},
		{"plain", "9500", 9500, true},
		{"garbage", "bad", 0, false},
		{"empty", "", 0, false},
		{"only decoration", "€ ,", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ParsePrice(tt.raw)
			assert.Equal(t, tt.valid, v.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, v.Float64)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	n := NewPriceNormalizer(nil)

	t.Run("imputes mean for unparseable cells", func(t *testing.T) {
		raw := []string{"10,000", "12 000", "bad", "9,500", "11,000"}
		out, stats, err := n.Normalize(raw)
		require.NoError(t, err)

		// Four valid values parse; the fifth slot gets their mean.
		assert.Equal(t, []float64{10000, 12000, 10625.0, 9500, 11000}, out)
		assert.Equal(t, 5, stats.Total)
		assert.Equal(t, 4, stats.Parsed)
		assert.Equal(t, 1, stats.Imputed)
		assert.Equal(t, 10625.0, stats.Mean)
	})

	t.Run("preserves length and order", func(t *testing.T) {
		raw := []string{"1", "x", "3", "y", "5"}
		out, _, err := n.Normalize(raw)
		require.NoError(t, err)
		require.Len(t, out, len(raw))
		assert.Equal(t, 1.0, out[0])
		assert.Equal(t, 3.0, out[2])
		assert.Equal(t, 5.0, out[4])
		assert.Equal(t, 3.0, out[1]) // mean of 1, 3, 5
		assert.Equal(t, 3.0, out[3])
	})

	t.Run("all cells unparseable is a named error", func(t *testing.T) {
		_, _, err := n.Normalize([]string{"bad", "worse", ""})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyNumericColumn)
	})

	t.Run("no imputation when everything parses", func(t *testing.T) {
		out, stats, err := n.Normalize([]string{"100", "200"})
		require.NoError(t, err)
		assert.Equal(t, []float64{100, 200}, out)
		assert.Equal(t, 0, stats.Imputed)
	})
}
