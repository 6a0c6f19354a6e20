package clean

import (
	"errors"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"

	"carprice/internal/dataset"
)

// ErrEmptyNumericColumn is returned when every cell in a would-be numeric
// column fails to parse, leaving the imputation mean undefined.
var ErrEmptyNumericColumn = errors.New("no valid values in price column after cleaning")

// decorationPattern strips currency symbols, unit suffixes and any other
// non-numeric decoration left after separator removal.
var decorationPattern = regexp.MustCompile(`[^0-9.+\-]`)

// PriceStats summarizes one normalization run.
type PriceStats struct {
	Total   int     // input values
	Parsed  int     // values that parsed to a float
	Imputed int     // values substituted with the column mean
	Mean    float64 // mean over the parsed values
}

// PriceNormalizer converts raw locale-formatted price strings into a clean
// numeric column, imputing the column mean for unparseable cells.
type PriceNormalizer struct {
	logger *slog.Logger
}

// NewPriceNormalizer creates a normalizer with the given logger.
func NewPriceNormalizer(logger *slog.Logger) *PriceNormalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &PriceNormalizer{logger: logger}
}

// ParsePrice cleans a single raw price string and parses it. Each step is
// applied in order: thousands separators, then currency/decoration, then
// whitespace, then the float parse. Failure yields Missing, never an error.
func ParsePrice(raw string) dataset.Value {
	s := strings.ReplaceAll(raw, ",", "")
	s = decorationPattern.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return dataset.Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return dataset.Missing()
	}
	return dataset.Num(f)
}

// Normalize produces a numeric price column of equal length and order as the
// input. Unparseable cells receive the arithmetic mean of the cells that did
// parse (single imputation over the whole column). If nothing parses the
// mean is undefined and ErrEmptyNumericColumn is returned.
func (n *PriceNormalizer) Normalize(raw []string) ([]float64, PriceStats, error) {
	values := make([]dataset.Value, len(raw))
	var parsed []float64

	for i, r := range raw {
		values[i] = ParsePrice(r)
		if values[i].Valid {
			parsed = append(parsed, values[i].Float64)
		}
	}

	if len(parsed) == 0 {
		return nil, PriceStats{Total: len(raw)}, ErrEmptyNumericColumn
	}

	mean := stat.Mean(parsed, nil)

	out := make([]float64, len(values))
	imputed := 0
	for i, v := range values {
		if v.Valid {
			out[i] = v.Float64
		} else {
			out[i] = mean
			imputed++
		}
	}

	stats := PriceStats{
		Total:   len(raw),
		Parsed:  len(parsed),
		Imputed: imputed,
		Mean:    mean,
	}

	n.logger.Info("normalized price column",
		slog.Int("total", stats.Total),
		slog.Int("parsed", stats.Parsed),
		slog.Int("imputed", stats.Imputed),
		slog.Float64("mean", stats.Mean))

	return out, stats, nil
}
