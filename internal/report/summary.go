package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"carprice/internal/clean"
	"carprice/internal/model"
)

// FormatModelSummary renders the textual model report: coefficient table
// with standard errors and significance, fit statistics, the VIF table,
// and the cross-validation result.
func FormatModelSummary(fit *model.Fit, vifs []model.VIFEntry, cv *model.CVResult, prices clean.PriceStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== OLS REGRESSION: price ~ predictors ===\n")
	fmt.Fprintf(&b, "Observations: %d   Predictors: %d\n", fit.N, fit.P)
	fmt.Fprintf(&b, "Price column: %d values, %d parsed, %d imputed with mean %.2f\n\n",
		prices.Total, prices.Parsed, prices.Imputed, prices.Mean)

	width := 12
	for _, name := range fit.Names {
		if len(name) > width {
			width = len(name)
		}
	}

	fmt.Fprintf(&b, "%-*s | %12s | %10s | %8s | %10s |\n", width, "Term", "Coefficient", "Std.Error", "t", "p-value")
	fmt.Fprintf(&b, "%s-|-%s-|-%s-|-%s-|-%s-|\n",
		strings.Repeat("-", width), strings.Repeat("-", 12), strings.Repeat("-", 10),
		strings.Repeat("-", 8), strings.Repeat("-", 10))
	for i, name := range fit.Names {
		fmt.Fprintf(&b, "%-*s | %12.4f | %10.4f | %8.3f | %10.4g | %s\n",
			width, name, fit.Coefficients[i], fit.StdErrors[i], fit.TStats[i], fit.PValues[i],
			significanceStars(fit.PValues[i]))
	}

	fmt.Fprintf(&b, "\nR²: %.4f   Adjusted R²: %.4f   Residual std. error: %.4f\n",
		fit.R2, fit.AdjR2, fit.ResidualStdErr)

	fmt.Fprintf(&b, "\n=== VARIANCE INFLATION FACTORS ===\n")
	for _, v := range vifs {
		if math.IsInf(v.VIF, 1) {
			fmt.Fprintf(&b, "%-*s | Inf (perfectly collinear)\n", width, v.Name)
		} else {
			fmt.Fprintf(&b, "%-*s | %8.2f\n", width, v.Name, v.VIF)
		}
	}

	if cv != nil {
		fmt.Fprintf(&b, "\n=== %d-FOLD CROSS-VALIDATION (seed %d) ===\n", cv.Folds, cv.Seed)
		for i := range cv.FoldRMSE {
			fmt.Fprintf(&b, "fold %d: RMSE %.2f   MAE %.2f\n", i+1, cv.FoldRMSE[i], cv.FoldMAE[i])
		}
		fmt.Fprintf(&b, "mean RMSE %.2f ± %.2f   mean MAE %.2f\n", cv.MeanRMSE, cv.StdRMSE, cv.MeanMAE)
	}

	return b.String()
}

// significanceStars returns the conventional p-value markers.
func significanceStars(p float64) string {
	switch {
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	case p < 0.1:
		return "."
	default:
		return ""
	}
}

// WriteText writes a text report, creating the parent directory on demand.
func WriteText(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
