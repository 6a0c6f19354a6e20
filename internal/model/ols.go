package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInsufficientRows is returned when there are not enough
	// observations to estimate the requested coefficients.
	ErrInsufficientRows = errors.New("not enough rows to fit model")
	// ErrSingularDesign is returned when the design matrix is rank
	// deficient and the normal equations cannot be solved.
	ErrSingularDesign = errors.New("design matrix is singular")
)

// InterceptName is the coefficient name used for the fitted intercept.
const InterceptName = "(Intercept)"

// Fit holds an ordinary-least-squares fit of the target on the predictors,
// with an intercept, plus the standard diagnostics.
type Fit struct {
	Names        []string  // intercept first, then predictor names
	Coefficients []float64 // aligned with Names
	StdErrors    []float64
	TStats       []float64
	PValues      []float64

	R2             float64
	AdjR2          float64
	ResidualStdErr float64

	N int // observations
	P int // predictors, excluding intercept
}

// FitOLS fits target = intercept + X*beta by QR decomposition and derives
// coefficient standard errors from the unscaled covariance (X'X)^-1.
func FitOLS(names []string, X [][]float64, y []float64) (*Fit, error) {
	n := len(X)
	if n == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrInsufficientRows)
	}
	p := len(names)
	if len(y) != n {
		return nil, fmt.Errorf("target has %d rows but predictors have %d", len(y), n)
	}
	if n <= p+1 {
		return nil, fmt.Errorf("%w: %d rows for %d coefficients", ErrInsufficientRows, n, p+1)
	}

	// Design matrix with a leading intercept column.
	a := mat.NewDense(n, p+1, nil)
	for i, row := range X {
		if len(row) != p {
			return nil, fmt.Errorf("row %d has %d predictors, expected %d", i, len(row), p)
		}
		a.Set(i, 0, 1)
		for j, v := range row {
			a.Set(i, j+1, v)
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}

	// Residuals and sums of squares.
	var fitted mat.VecDense
	fitted.MulVec(a, &beta)

	rss := 0.0
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		rss += r * r
	}

	meanY := stat.Mean(y, nil)
	tss := 0.0
	for _, v := range y {
		tss += (v - meanY) * (v - meanY)
	}

	dof := n - p - 1
	sigma2 := rss / float64(dof)

	// Unscaled covariance for the standard errors.
	var xtx mat.Dense
	xtx.Mul(a.T(), a)
	var cov mat.Dense
	if err := cov.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}

	fit := &Fit{
		Names:          append([]string{InterceptName}, names...),
		Coefficients:   make([]float64, p+1),
		StdErrors:      make([]float64, p+1),
		TStats:         make([]float64, p+1),
		PValues:        make([]float64, p+1),
		N:              n,
		P:              p,
		ResidualStdErr: math.Sqrt(sigma2),
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(dof)}
	for j := 0; j <= p; j++ {
		fit.Coefficients[j] = beta.AtVec(j)
		fit.StdErrors[j] = math.Sqrt(sigma2 * cov.At(j, j))
		if fit.StdErrors[j] > 0 {
			fit.TStats[j] = fit.Coefficients[j] / fit.StdErrors[j]
			fit.PValues[j] = 2 * tDist.CDF(-math.Abs(fit.TStats[j]))
		} else {
			fit.TStats[j] = math.Inf(sign(fit.Coefficients[j]))
			fit.PValues[j] = 0
		}
	}

	if tss > 0 {
		fit.R2 = 1 - rss/tss
		fit.AdjR2 = 1 - (1-fit.R2)*float64(n-1)/float64(dof)
	} else {
		// Constant target: the model explains nothing beyond the mean.
		fit.R2 = 0
		fit.AdjR2 = 0
	}

	return fit, nil
}

// Predict applies the fitted coefficients to new predictor rows.
func (f *Fit) Predict(X [][]float64) ([]float64, error) {
	out := make([]float64, len(X))
	for i, row := range X {
		if len(row) != f.P {
			return nil, fmt.Errorf("row %d has %d predictors, expected %d", i, len(row), f.P)
		}
		v := f.Coefficients[0]
		for j, x := range row {
			v += f.Coefficients[j+1] * x
		}
		out[i] = v
	}
	return out, nil
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}
