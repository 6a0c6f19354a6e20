package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoding(t *testing.T) {
	values := []string{"petrol", "diesel", "petrol", "electric"}
	enc := NewEncoding("fuel_type", values)

	t.Run("vocabulary in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"petrol", "diesel", "electric"}, enc.Categories)
		assert.Equal(t, 3, enc.Width())
		assert.Equal(t, []string{"fuel_type_petrol", "fuel_type_diesel", "fuel_type_electric"}, enc.ColumnNames())
	})

	t.Run("exactly one indicator per row", func(t *testing.T) {
		for _, v := range values {
			vec, err := enc.Encode(v)
			require.NoError(t, err)
			ones := 0
			for _, x := range vec {
				if x == 1 {
					ones++
				} else {
					assert.Zero(t, x)
				}
			}
			assert.Equal(t, 1, ones)
		}
	})

	t.Run("unknown value rejected", func(t *testing.T) {
		_, err := enc.Encode("hydrogen")
		assert.ErrorContains(t, err, "not in vocabulary")
	})

	t.Run("round-trips every category", func(t *testing.T) {
		for _, v := range enc.Categories {
			vec, err := enc.Encode(v)
			require.NoError(t, err)
			got, err := enc.Decode(vec)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("Decode rejects malformed vectors", func(t *testing.T) {
		tests := []struct {
			name string
			vec  []float64
		}{
			{"no active column", []float64{0, 0, 0}},
			{"two active columns", []float64{1, 1, 0}},
			{"non-binary value", []float64{0.5, 0, 0}},
			{"wrong width", []float64{1, 0}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := enc.Decode(tt.vec)
				assert.Error(t, err)
			})
		}
	})
}
