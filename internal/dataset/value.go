package dataset

import (
	"strconv"
	"strings"
)

// Value is a numeric cell that is either a finite float or explicitly missing.
// Downstream stages branch on Valid instead of checking for NaN sentinels.
type Value struct {
	Float64 float64
	Valid   bool
}

// Num returns a present numeric value.
func Num(v float64) Value {
	return Value{Float64: v, Valid: true}
}

// Missing returns the absent value.
func Missing() Value {
	return Value{}
}

// IsMissing reports whether the value is absent.
func (v Value) IsMissing() bool {
	return !v.Valid
}

// ParseNumeric coerces a raw textual cell to a Value. Thousands separators
// and surrounding whitespace are tolerated; anything that still fails to
// parse becomes Missing, never an error.
func ParseNumeric(raw string) Value {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Missing()
	}
	return Num(f)
}
