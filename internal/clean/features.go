package clean

import (
	"fmt"
	"log/slog"

	"carprice/internal/dataset"
)

// SentinelRule names a targeted data-quality fix: a literal value known to
// be bad data in one specific column (for example a model year entered in
// the fuel-consumption column). Matching cells are mapped to Missing before
// the row-deletion pass.
type SentinelRule struct {
	Column string  `yaml:"column"`
	Value  float64 `yaml:"value"`
}

// FeatureSet is the strictly numeric predictor block that survives cleaning.
// Kept records, per input row, whether the row survived; callers use it to
// keep target and categorical columns row-aligned with the features.
type FeatureSet struct {
	Columns []string
	Rows    [][]float64
	Kept    []bool
	Dropped int
}

// NumRows returns the number of surviving rows.
func (fs *FeatureSet) NumRows() int {
	return len(fs.Rows)
}

// Column returns the values of the named feature column over surviving rows.
func (fs *FeatureSet) Column(name string) ([]float64, error) {
	for j, c := range fs.Columns {
		if c == name {
			out := make([]float64, len(fs.Rows))
			for i, row := range fs.Rows {
				out[i] = row[j]
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("feature column %q not found", name)
}

// FeatureCleaner coerces the selected predictor columns to numeric values.
// Unlike the price path, missing values here are handled by row-wise
// deletion, not imputation. That asymmetry is intentional and preserved.
type FeatureCleaner struct {
	columns   []string
	sentinels []SentinelRule
	logger    *slog.Logger
}

// NewFeatureCleaner creates a cleaner for the given predictor columns and
// sentinel exceptions.
func NewFeatureCleaner(columns []string, sentinels []SentinelRule, logger *slog.Logger) *FeatureCleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeatureCleaner{columns: columns, sentinels: sentinels, logger: logger}
}

// Clean coerces each selected column independently, applies the sentinel
// rules, and drops every row with at least one missing feature. A row with
// all-valid features is never dropped.
func (c *FeatureCleaner) Clean(t *dataset.Table) (*FeatureSet, error) {
	if missing := t.MissingColumns(c.columns); len(missing) > 0 {
		return nil, fmt.Errorf("feature columns missing from dataset: %v", missing)
	}

	n := t.NumRows()
	coerced := make([][]dataset.Value, len(c.columns))

	for j, name := range c.columns {
		raw, err := t.Column(name)
		if err != nil {
			return nil, fmt.Errorf("read feature column: %w", err)
		}

		col := make([]dataset.Value, n)
		for i, cell := range raw {
			col[i] = dataset.ParseNumeric(cell)
		}

		for _, rule := range c.sentinels {
			if rule.Column != name {
				continue
			}
			hits := 0
			for i, v := range col {
				if v.Valid && v.Float64 == rule.Value {
					col[i] = dataset.Missing()
					hits++
				}
			}
			if hits > 0 {
				c.logger.Warn("applied sentinel exception",
					slog.String("column", name),
					slog.Float64("trigger_value", rule.Value),
					slog.Int("cells", hits))
			}
		}

		coerced[j] = col
	}

	kept := make([]bool, n)
	var rows [][]float64
	for i := 0; i < n; i++ {
		complete := true
		for j := range c.columns {
			if coerced[j][i].IsMissing() {
				complete = false
				break
			}
		}
		kept[i] = complete
		if complete {
			row := make([]float64, len(c.columns))
			for j := range c.columns {
				row[j] = coerced[j][i].Float64
			}
			rows = append(rows, row)
		}
	}

	dropped := n - len(rows)
	c.logger.Info("cleaned feature columns",
		slog.Int("columns", len(c.columns)),
		slog.Int("rows_in", n),
		slog.Int("rows_kept", len(rows)),
		slog.Int("rows_dropped", dropped))

	columns := make([]string, len(c.columns))
	copy(columns, c.columns)

	return &FeatureSet{Columns: columns, Rows: rows, Kept: kept, Dropped: dropped}, nil
}
