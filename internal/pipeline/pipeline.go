package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carprice/internal/clean"
	"carprice/internal/config"
	"carprice/internal/dataset"
	"carprice/internal/encode"
	"carprice/internal/model"
)

// Result carries everything the run produced: the encoded matrix, the
// fitted model with diagnostics, and the cross-validation report.
type Result struct {
	Matrix *encode.Matrix
	View   *encode.RegressionView

	Fit *model.Fit
	VIF []model.VIFEntry
	CV  *model.CVResult

	PriceStats   clean.PriceStats
	Vocabularies map[string][]string // categorical column -> preserved labels

	RowsLoaded  int
	RowsKept    int
	RowsDropped int
}

// Pipeline runs the full analysis as a strict forward sequence of stages.
// Each stage consumes the previous stage's snapshot and produces a new one;
// nothing is mutated after the encoded matrix is built.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run executes load, price normalization, feature cleaning, categorical
// collapse, one-hot encoding, the OLS fit with diagnostics, and k-fold
// cross-validation. Errors are attributed to their stage.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	cols := p.cfg.Input.Columns

	p.logger.InfoContext(ctx, "starting price analysis pipeline",
		slog.String("input", p.cfg.Input.Path),
		slog.Int("top_n", p.cfg.Model.TopN),
		slog.Int("folds", p.cfg.Model.Folds))

	table, err := dataset.Load(p.cfg.Input.Path, p.logger)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	contract := append([]string{cols.Price}, cols.Features()...)
	contract = append(contract, cols.Categoricals()...)
	if missing := table.MissingColumns(contract); len(missing) > 0 {
		return nil, fmt.Errorf("input header does not satisfy the column contract: missing %v", missing)
	}

	rawPrices, err := table.Column(cols.Price)
	if err != nil {
		return nil, fmt.Errorf("read price column: %w", err)
	}
	prices, priceStats, err := clean.NewPriceNormalizer(p.logger).Normalize(rawPrices)
	if err != nil {
		return nil, fmt.Errorf("normalize price: %w", err)
	}

	cleaner := clean.NewFeatureCleaner(cols.Features(), p.cfg.Model.Sentinels, p.logger)
	features, err := cleaner.Clean(table)
	if err != nil {
		return nil, fmt.Errorf("clean features: %w", err)
	}

	// Row-align the target and categorical columns with the surviving
	// feature rows using the cleaner's keep mask.
	target := filterFloats(prices, features.Kept)

	vocab := make(map[string][]string, len(cols.Categoricals()))
	var cats []encode.CategoricalColumn
	for _, name := range cols.Categoricals() {
		raw, err := table.Column(name)
		if err != nil {
			return nil, fmt.Errorf("read categorical column: %w", err)
		}
		aligned := filterStrings(raw, features.Kept)
		relabeled, kept := encode.CollapseTopN(aligned, p.cfg.Model.TopN)
		vocab[name] = kept
		cats = append(cats, encode.CategoricalColumn{Name: name, Values: relabeled})
	}

	matrix, err := encode.BuildMatrix(features.Columns, features.Rows, target, cats, p.logger)
	if err != nil {
		return nil, fmt.Errorf("build encoded matrix: %w", err)
	}

	view := matrix.RegressionView()

	fit, err := model.FitOLS(view.Columns, view.Rows, matrix.Target)
	if err != nil {
		return nil, fmt.Errorf("fit model: %w", err)
	}

	vifs, err := model.VIFs(view.Columns, view.Rows)
	if err != nil {
		return nil, fmt.Errorf("compute VIF: %w", err)
	}

	cv, err := model.CrossValidate(view.Columns, view.Rows, matrix.Target, p.cfg.Model.Folds, p.cfg.Model.Seed)
	if err != nil {
		return nil, fmt.Errorf("cross-validate: %w", err)
	}

	result := &Result{
		Matrix:       matrix,
		View:         view,
		Fit:          fit,
		VIF:          vifs,
		CV:           cv,
		PriceStats:   priceStats,
		Vocabularies: vocab,
		RowsLoaded:   table.NumRows(),
		RowsKept:     matrix.NumRows(),
		RowsDropped:  features.Dropped,
	}

	p.logger.InfoContext(ctx, "pipeline completed",
		slog.Duration("duration", time.Since(start)),
		slog.Int("rows_loaded", result.RowsLoaded),
		slog.Int("rows_kept", result.RowsKept),
		slog.Float64("r2", fit.R2),
		slog.Float64("cv_rmse", cv.MeanRMSE))

	return result, nil
}

func filterFloats(values []float64, keep []bool) []float64 {
	out := make([]float64, 0, len(values))
	for i, v := range values {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}

func filterStrings(values []string, keep []bool) []string {
	out := make([]string, 0, len(values))
	for i, v := range values {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}
