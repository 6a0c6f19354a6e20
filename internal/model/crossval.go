package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// CVResult reports k-fold cross-validation error for one model variant.
type CVResult struct {
	Folds int
	Seed  int64

	FoldRMSE []float64
	FoldMAE  []float64

	MeanRMSE float64
	StdRMSE  float64
	MeanMAE  float64
}

// CrossValidate runs standard k-fold cross-validation: rows are shuffled
// with the given seed, partitioned into k disjoint folds, and for each fold
// the model is fitted on the remaining k-1 folds and evaluated on the
// held-out one. The seed makes the partition, and therefore the report,
// reproducible across runs.
func CrossValidate(names []string, X [][]float64, y []float64, k int, seed int64) (*CVResult, error) {
	n := len(X)
	if k < 2 {
		return nil, fmt.Errorf("cross-validation requires at least 2 folds, got %d", k)
	}
	if n < k {
		return nil, fmt.Errorf("cannot split %d rows into %d folds", n, k)
	}
	if len(y) != n {
		return nil, fmt.Errorf("target has %d rows but predictors have %d", len(y), n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	// Striped assignment keeps fold sizes within one of each other.
	folds := make([][]int, k)
	for i, idx := range perm {
		f := i % k
		folds[f] = append(folds[f], idx)
	}

	result := &CVResult{
		Folds:    k,
		Seed:     seed,
		FoldRMSE: make([]float64, k),
		FoldMAE:  make([]float64, k),
	}

	for f := 0; f < k; f++ {
		holdout := make(map[int]struct{}, len(folds[f]))
		for _, idx := range folds[f] {
			holdout[idx] = struct{}{}
		}

		var trainX [][]float64
		var trainY []float64
		for i := 0; i < n; i++ {
			if _, held := holdout[i]; !held {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}

		fit, err := FitOLS(names, trainX, trainY)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", f+1, err)
		}

		var testX [][]float64
		var testY []float64
		for _, idx := range folds[f] {
			testX = append(testX, X[idx])
			testY = append(testY, y[idx])
		}

		pred, err := fit.Predict(testX)
		if err != nil {
			return nil, fmt.Errorf("fold %d predict: %w", f+1, err)
		}

		sse := 0.0
		sae := 0.0
		for i, p := range pred {
			d := testY[i] - p
			sse += d * d
			sae += math.Abs(d)
		}
		result.FoldRMSE[f] = math.Sqrt(sse / float64(len(pred)))
		result.FoldMAE[f] = sae / float64(len(pred))
	}

	result.MeanRMSE = stat.Mean(result.FoldRMSE, nil)
	result.MeanMAE = stat.Mean(result.FoldMAE, nil)
	if k > 1 {
		result.StdRMSE = stat.StdDev(result.FoldRMSE, nil)
	}

	return result, nil
}
