package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cvData(n int) ([][]float64, []float64) {
	var X [][]float64
	var y []float64
	for i := 0; i < n; i++ {
		x := float64(i)
		noise := 5 * math.Sin(float64(i)*1.3)
		X = append(X, []float64{x})
		y = append(y, 100+4*x+noise)
	}
	return X, y
}

func TestCrossValidate(t *testing.T) {
	names := []string{"x"}
	X, y := cvData(60)

	t.Run("reports per-fold and aggregate error", func(t *testing.T) {
		res, err := CrossValidate(names, X, y, 5, 42)
		require.NoError(t, err)

		assert.Equal(t, 5, res.Folds)
		assert.Equal(t, int64(42), res.Seed)
		require.Len(t, res.FoldRMSE, 5)
		require.Len(t, res.FoldMAE, 5)

		for f := 0; f < 5; f++ {
			assert.Greater(t, res.FoldRMSE[f], 0.0)
			assert.GreaterOrEqual(t, res.FoldRMSE[f], res.FoldMAE[f])
		}
		assert.Greater(t, res.MeanRMSE, 0.0)
		// Noise amplitude bounds the error.
		assert.Less(t, res.MeanRMSE, 10.0)
	})

	t.Run("same seed reproduces the exact report", func(t *testing.T) {
		first, err := CrossValidate(names, X, y, 5, 7)
		require.NoError(t, err)
		second, err := CrossValidate(names, X, y, 5, 7)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("fold count validation", func(t *testing.T) {
		_, err := CrossValidate(names, X, y, 1, 42)
		assert.ErrorContains(t, err, "at least 2 folds")

		shortX, shortY := cvData(3)
		_, err = CrossValidate(names, shortX, shortY, 5, 42)
		assert.ErrorContains(t, err, "cannot split")
	})

	t.Run("mismatched target length", func(t *testing.T) {
		_, err := CrossValidate(names, X, y[:10], 5, 42)
		assert.ErrorContains(t, err, "target has")
	})
}
