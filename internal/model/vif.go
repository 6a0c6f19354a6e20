package model

import (
	"fmt"
	"math"
)

// VIFEntry is the variance inflation factor of a single predictor.
type VIFEntry struct {
	Name string
	VIF  float64
}

// VIFs computes the variance inflation factor for every predictor by
// regressing it on all the others. A predictor that is an exact linear
// combination of the rest reports +Inf rather than an error, since a
// collinear column is a diagnostic finding, not a failure.
func VIFs(names []string, X [][]float64) ([]VIFEntry, error) {
	p := len(names)
	if p < 2 {
		return nil, fmt.Errorf("VIF requires at least two predictors, got %d", p)
	}

	out := make([]VIFEntry, p)
	for j := 0; j < p; j++ {
		response := make([]float64, len(X))
		others := make([][]float64, len(X))
		for i, row := range X {
			response[i] = row[j]
			rest := make([]float64, 0, p-1)
			rest = append(rest, row[:j]...)
			rest = append(rest, row[j+1:]...)
			others[i] = rest
		}

		otherNames := make([]string, 0, p-1)
		otherNames = append(otherNames, names[:j]...)
		otherNames = append(otherNames, names[j+1:]...)

		entry := VIFEntry{Name: names[j]}
		aux, err := FitOLS(otherNames, others, response)
		switch {
		case err != nil:
			// Singular auxiliary regression means perfect collinearity.
			entry.VIF = math.Inf(1)
		case aux.R2 >= 1-1e-12:
			entry.VIF = math.Inf(1)
		default:
			entry.VIF = 1 / (1 - aux.R2)
		}
		out[j] = entry
	}

	return out, nil
}
