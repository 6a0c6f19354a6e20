package encode

import (
	"fmt"
	"log/slog"
)

// CategoricalColumn is a named categorical column, already collapsed to a
// bounded vocabulary, aligned with the numeric feature rows.
type CategoricalColumn struct {
	Name   string
	Values []string
}

// Matrix is the row-aligned table consumed by the model fitter: numeric
// predictors followed by one-hot indicator blocks, plus the target vector.
// It is derived once and read-only from then on.
type Matrix struct {
	Columns   []string
	Rows      [][]float64
	Target    []float64
	Encodings []*Encoding

	// NumNumeric is the count of leading numeric predictor columns; the
	// indicator blocks follow in Encodings order.
	NumNumeric int
}

// NumRows returns the number of observations.
func (m *Matrix) NumRows() int {
	return len(m.Rows)
}

// NumPredictors returns the number of predictor columns.
func (m *Matrix) NumPredictors() int {
	return len(m.Columns)
}

// BuildMatrix assembles the encoded design matrix from the cleaned numeric
// block, the target vector, and the collapsed categorical columns.
//
// The numeric block and target must be row-aligned; a mismatch there is a
// hard error. A categorical column whose length does not match is reported
// with an actionable message and skipped rather than failing the build,
// since it indicates a derived table that lost row alignment upstream.
func BuildMatrix(numericColumns []string, numeric [][]float64, target []float64, cats []CategoricalColumn, logger *slog.Logger) (*Matrix, error) {
	if logger == nil {
		logger = slog.Default()
	}

	n := len(numeric)
	if len(target) != n {
		return nil, fmt.Errorf("target has %d rows but features have %d; cleaning stages lost row alignment", len(target), n)
	}
	for i, row := range numeric {
		if len(row) != len(numericColumns) {
			return nil, fmt.Errorf("numeric row %d has %d cells, expected %d", i, len(row), len(numericColumns))
		}
	}

	m := &Matrix{
		Columns:    append([]string(nil), numericColumns...),
		Target:     append([]float64(nil), target...),
		NumNumeric: len(numericColumns),
	}

	m.Rows = make([][]float64, n)
	for i := range m.Rows {
		m.Rows[i] = append([]float64(nil), numeric[i]...)
	}

	for _, cat := range cats {
		if len(cat.Values) != n {
			logger.Warn("skipping categorical column that lost row alignment",
				slog.String("column", cat.Name),
				slog.Int("values", len(cat.Values)),
				slog.Int("expected", n),
				slog.String("hint", "apply the feature-cleaning row mask before encoding"))
			continue
		}

		enc := NewEncoding(cat.Name, cat.Values)
		m.Columns = append(m.Columns, enc.ColumnNames()...)
		m.Encodings = append(m.Encodings, enc)

		for i := range m.Rows {
			vec, err := enc.Encode(cat.Values[i])
			if err != nil {
				return nil, fmt.Errorf("encode column %q row %d: %w", cat.Name, i, err)
			}
			m.Rows[i] = append(m.Rows[i], vec...)
		}
	}

	logger.Info("built encoded matrix",
		slog.Int("rows", n),
		slog.Int("predictors", len(m.Columns)),
		slog.Int("categorical_blocks", len(m.Encodings)))

	return m, nil
}
