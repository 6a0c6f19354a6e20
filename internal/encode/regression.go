package encode

// RegressionView is the full-rank projection of a Matrix handed to the
// model fitter. The Matrix itself keeps the exhaustive indicator set per
// categorical column so rows stay decodable; fitting with an intercept on
// that set would be rank deficient, so the view drops the first-seen
// category of each block and records it as the reference level. Each
// dummy coefficient is then interpreted relative to its block's reference.
type RegressionView struct {
	Columns    []string
	Rows       [][]float64
	References map[string]string // source column -> reference category
}

// RegressionView builds the reduced predictor set: all numeric columns,
// plus every indicator column except the first of each categorical block.
func (m *Matrix) RegressionView() *RegressionView {
	keep := make([]bool, len(m.Columns))
	for j := 0; j < m.NumNumeric; j++ {
		keep[j] = true
	}

	refs := make(map[string]string, len(m.Encodings))
	offset := m.NumNumeric
	for _, enc := range m.Encodings {
		if enc.Width() > 0 {
			refs[enc.Source] = enc.Categories[0]
		}
		for j := 1; j < enc.Width(); j++ {
			keep[offset+j] = true
		}
		offset += enc.Width()
	}

	view := &RegressionView{References: refs}
	for j, k := range keep {
		if k {
			view.Columns = append(view.Columns, m.Columns[j])
		}
	}

	view.Rows = make([][]float64, len(m.Rows))
	for i, row := range m.Rows {
		reduced := make([]float64, 0, len(view.Columns))
		for j, k := range keep {
			if k {
				reduced = append(reduced, row[j])
			}
		}
		view.Rows[i] = reduced
	}

	return view
}
