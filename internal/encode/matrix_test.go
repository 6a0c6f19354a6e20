package encode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMatrix(t *testing.T) {
	numericColumns := []string{"power", "year"}
	numeric := [][]float64{
		{85, 2008},
		{110, 2012},
		{70, 2005},
	}
	target := []float64{10000, 12000, 9500}

	t.Run("assembles numeric and indicator blocks", func(t *testing.T) {
		cats := []CategoricalColumn{
			{Name: "brand", Values: []string{"VW", "Audi", "VW"}},
		}

		m, err := BuildMatrix(numericColumns, numeric, target, cats, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"power", "year", "brand_VW", "brand_Audi"}, m.Columns)
		assert.Equal(t, 2, m.NumNumeric)
		assert.Equal(t, 3, m.NumRows())
		assert.Equal(t, []float64{85, 2008, 1, 0}, m.Rows[0])
		assert.Equal(t, []float64{110, 2012, 0, 1}, m.Rows[1])
		assert.Equal(t, target, m.Target)
	})

	t.Run("target misalignment is fatal", func(t *testing.T) {
		_, err := BuildMatrix(numericColumns, numeric, []float64{1, 2}, nil, nil)
		assert.ErrorContains(t, err, "lost row alignment")
	})

	t.Run("misaligned categorical column is skipped with a message", func(t *testing.T) {
		cats := []CategoricalColumn{
			{Name: "brand", Values: []string{"VW", "Audi"}}, // one row short
			{Name: "fuel", Values: []string{"petrol", "diesel", "petrol"}},
		}

		m, err := BuildMatrix(numericColumns, numeric, target, cats, nil)
		require.NoError(t, err)
		// brand skipped, fuel encoded.
		assert.Equal(t, []string{"power", "year", "fuel_petrol", "fuel_diesel"}, m.Columns)
		require.Len(t, m.Encodings, 1)
		assert.Equal(t, "fuel", m.Encodings[0].Source)
	})

	t.Run("rows are decodable", func(t *testing.T) {
		cats := []CategoricalColumn{
			{Name: "brand", Values: []string{"VW", "Audi", "VW"}},
		}
		m, err := BuildMatrix(numericColumns, numeric, target, cats, nil)
		require.NoError(t, err)

		enc := m.Encodings[0]
		for i, want := range cats[0].Values {
			got, err := enc.Decode(m.Rows[i][m.NumNumeric:])
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})
}

func TestRegressionView(t *testing.T) {
	numericColumns := []string{"power"}
	numeric := [][]float64{{85}, {110}, {70}, {95}}
	target := []float64{10000, 12000, 9500, 11000}
	cats := []CategoricalColumn{
		{Name: "brand", Values: []string{"VW", "Audi", "VW", "BMW"}},
	}

	m, err := BuildMatrix(numericColumns, numeric, target, cats, nil)
	require.NoError(t, err)

	view := m.RegressionView()

	// First-seen category becomes the reference level and is dropped.
	assert.Equal(t, []string{"power", "brand_Audi", "brand_BMW"}, view.Columns)
	assert.Equal(t, map[string]string{"brand": "VW"}, view.References)

	require.Len(t, view.Rows, 4)
	assert.Equal(t, []float64{85, 0, 0}, view.Rows[0])  // VW: reference, all zeros
	assert.Equal(t, []float64{110, 1, 0}, view.Rows[1]) // Audi
	assert.Equal(t, []float64{95, 0, 1}, view.Rows[3])  // BMW

	// The full matrix keeps the exhaustive indicator set.
	assert.Equal(t, []string{"power", "brand_VW", "brand_Audi", "brand_BMW"}, m.Columns)
}
