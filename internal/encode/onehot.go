package encode

import "fmt"

// Encoding maps one categorical column to a set of binary indicator columns,
// one per vocabulary value, in first-seen order. No category is dropped:
// the indicators are mutually exclusive and exhaustive, so every row has
// exactly one 1 and the original value can always be reconstructed. The
// full-rank interpretation relies on the regression intercept being fitted
// separately.
type Encoding struct {
	Source     string
	Categories []string
	index      map[string]int
}

// NewEncoding learns the vocabulary of a (possibly collapsed) categorical
// column in first-seen order.
func NewEncoding(source string, values []string) *Encoding {
	e := &Encoding{Source: source, index: make(map[string]int)}
	for _, v := range values {
		if _, ok := e.index[v]; !ok {
			e.index[v] = len(e.Categories)
			e.Categories = append(e.Categories, v)
		}
	}
	return e
}

// Width returns the number of indicator columns.
func (e *Encoding) Width() int {
	return len(e.Categories)
}

// ColumnNames returns the indicator column names, source_category style.
func (e *Encoding) ColumnNames() []string {
	names := make([]string, len(e.Categories))
	for i, c := range e.Categories {
		names[i] = fmt.Sprintf("%s_%s", e.Source, c)
	}
	return names
}

// Encode returns the indicator vector for a category value.
func (e *Encoding) Encode(value string) ([]float64, error) {
	i, ok := e.index[value]
	if !ok {
		return nil, fmt.Errorf("value %q not in vocabulary of column %q", value, e.Source)
	}
	vec := make([]float64, len(e.Categories))
	vec[i] = 1
	return vec, nil
}

// Decode reconstructs the category value from an indicator vector. The
// vector must contain exactly one 1; anything else is a malformed row.
func (e *Encoding) Decode(indicators []float64) (string, error) {
	if len(indicators) != len(e.Categories) {
		return "", fmt.Errorf("indicator vector has %d entries, expected %d", len(indicators), len(e.Categories))
	}
	hot := -1
	for i, v := range indicators {
		switch v {
		case 0:
		case 1:
			if hot >= 0 {
				return "", fmt.Errorf("indicator vector for %q has more than one active column", e.Source)
			}
			hot = i
		default:
			return "", fmt.Errorf("indicator vector for %q contains non-binary value %v", e.Source, v)
		}
	}
	if hot < 0 {
		return "", fmt.Errorf("indicator vector for %q has no active column", e.Source)
	}
	return e.Categories[hot], nil
}
