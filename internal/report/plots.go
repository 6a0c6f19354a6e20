package report

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveHistogram renders a histogram of the values to a PNG file.
func SaveHistogram(values []float64, title, xLabel, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("no values to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), 30)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	p.Add(h)

	return save(p, path)
}

// SaveScatter renders an x/y scatter plot to a PNG file.
func SaveScatter(x, y []float64, title, xLabel, yLabel, path string) error {
	if len(x) != len(y) {
		return fmt.Errorf("scatter series lengths differ: %d vs %d", len(x), len(y))
	}
	if len(x) == 0 {
		return fmt.Errorf("no values to plot")
	}

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	p.Add(s)

	return save(p, path)
}

func save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create plot directory: %w", err)
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
