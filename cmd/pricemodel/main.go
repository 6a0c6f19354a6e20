package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"carprice/internal/config"
	"carprice/internal/infrastructure"
	"carprice/internal/pipeline"
	"carprice/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults to carprice.yml)")
	inputPath := flag.String("input", "", "dataset file, CSV or XLSX (overrides config)")
	outputDir := flag.String("out", "", "output directory for reports (overrides config)")
	topN := flag.Int("topn", 0, "top-N bound for categorical vocabularies (overrides config)")
	folds := flag.Int("folds", 0, "cross-validation fold count (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *inputPath != "" {
		cfg.Input.Path = *inputPath
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *topN > 0 {
		cfg.Model.TopN = *topN
	}
	if *folds > 0 {
		cfg.Model.Folds = *folds
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration after flag overrides", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	ctx := context.Background()
	result, err := pipeline.New(cfg, logger).Run(ctx)
	if err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}

	summary := report.FormatModelSummary(result.Fit, result.VIF, result.CV, result.PriceStats)
	fmt.Print(summary)

	writer := report.NewCSVWriter(cfg.Output.Dir, logger)
	if err := writer.WriteMatrix(result.Matrix, "encoded_matrix.csv"); err != nil {
		logger.Error("Failed to write encoded matrix", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteCoefficients(result.Fit, result.VIF, "coefficients.csv"); err != nil {
		logger.Error("Failed to write coefficient table", "error", err)
		os.Exit(1)
	}
	if err := report.WriteText(cfg.ReportPath("model_summary.txt"), summary); err != nil {
		logger.Error("Failed to write model summary", "error", err)
		os.Exit(1)
	}

	if cfg.Output.WritePlots {
		if err := writePlots(cfg, result, logger); err != nil {
			logger.Error("Failed to write plots", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("Reports generated",
		"dir", cfg.Output.Dir,
		"rows", result.RowsKept,
		"r2", result.Fit.R2)
}

// writePlots renders the descriptive plots: the price distribution and
// price against engine power.
func writePlots(cfg *config.Config, result *pipeline.Result, logger *slog.Logger) error {
	prices := result.Matrix.Target

	if err := report.SaveHistogram(prices, "Price distribution", "price", cfg.ReportPath("price_hist.png")); err != nil {
		return err
	}

	powerCol := cfg.Input.Columns.Power
	for j, name := range result.Matrix.Columns[:result.Matrix.NumNumeric] {
		if name != powerCol {
			continue
		}
		power := make([]float64, len(result.Matrix.Rows))
		for i, row := range result.Matrix.Rows {
			power[i] = row[j]
		}
		if err := report.SaveScatter(power, prices, "Price vs power", powerCol, "price", cfg.ReportPath("price_vs_power.png")); err != nil {
			return err
		}
	}

	logger.Info("Wrote descriptive plots", "dir", cfg.Output.Dir)
	return nil
}
