package report

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"carprice/internal/encode"
	"carprice/internal/model"
)

// CSVWriter persists pipeline outputs as CSV files under an output
// directory, creating it on demand.
type CSVWriter struct {
	dir    string
	logger *slog.Logger
}

// NewCSVWriter creates a writer rooted at the given directory.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteMatrix writes the encoded design matrix with its target column.
// Floats are formatted with the shortest round-trip representation, so
// identical matrices produce byte-identical files.
func (w *CSVWriter) WriteMatrix(m *encode.Matrix, name string) error {
	header := append(append([]string(nil), m.Columns...), "price")
	records := make([][]string, m.NumRows())
	for i, row := range m.Rows {
		rec := make([]string, 0, len(row)+1)
		for _, v := range row {
			rec = append(rec, formatFloat(v))
		}
		rec = append(rec, formatFloat(m.Target[i]))
		records[i] = rec
	}
	return w.write(name, header, records)
}

// WriteCoefficients writes the fitted coefficient table with its
// diagnostics, one row per term. VIF is blank for the intercept.
func (w *CSVWriter) WriteCoefficients(fit *model.Fit, vifs []model.VIFEntry, name string) error {
	vifByName := make(map[string]float64, len(vifs))
	for _, v := range vifs {
		vifByName[v.Name] = v.VIF
	}

	header := []string{"term", "coefficient", "std_error", "t_stat", "p_value", "vif"}
	records := make([][]string, len(fit.Names))
	for i, term := range fit.Names {
		vifCell := ""
		if v, ok := vifByName[term]; ok {
			vifCell = formatFloat(v)
		}
		records[i] = []string{
			term,
			formatFloat(fit.Coefficients[i]),
			formatFloat(fit.StdErrors[i]),
			formatFloat(fit.TStats[i]),
			formatFloat(fit.PValues[i]),
			vifCell,
		}
	}
	return w.write(name, header, records)
}

func (w *CSVWriter) write(name string, header []string, records [][]string) error {
	path := filepath.Join(w.dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}

	w.logger.Info("wrote report",
		slog.String("path", path),
		slog.Int("records", len(records)))

	return writer.Error()
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
