package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var clusterColors = []color.RGBA{
	{R: 220, G: 60, B: 60, A: 255},
	{R: 60, G: 140, B: 220, A: 255},
	{R: 60, G: 180, B: 90, A: 255},
	{R: 220, G: 160, B: 40, A: 255},
	{R: 150, G: 80, B: 200, A: 255},
}

// Histogram renders the distribution of one numeric column.
func Histogram(values []float64, column, path string) error {
	p := plot.New()
	p.Title.Text = "Distribution of " + column
	p.X.Label.Text = column
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), 16)
	if err != nil {
		return fmt.Errorf("report: histogram for %s: %w", column, err)
	}
	h.FillColor = color.RGBA{R: 60, G: 140, B: 220, A: 255}
	p.Add(h)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

// ClusterScatter plots the first two feature dimensions colored by
// cluster assignment, with centroids drawn as crosses.
func ClusterScatter(X [][]float64, assignments []int, centroids [][]float64, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = "Clusters"
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	k := 0
	for _, a := range assignments {
		if a >= k {
			k = a + 1
		}
	}
	for c := 0; c < k; c++ {
		pts := make(plotter.XYs, 0)
		for i, a := range assignments {
			if a == c && len(X[i]) >= 2 {
				pts = append(pts, plotter.XY{X: X[i][0], Y: X[i][1]})
			}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("report: cluster scatter: %w", err)
		}
		s.Color = clusterColors[c%len(clusterColors)]
		p.Add(s)
	}

	centroidPts := make(plotter.XYs, 0, len(centroids))
	for _, c := range centroids {
		if len(c) >= 2 {
			centroidPts = append(centroidPts, plotter.XY{X: c[0], Y: c[1]})
		}
	}
	cs, err := plotter.NewScatter(centroidPts)
	if err != nil {
		return fmt.Errorf("report: cluster centroids: %w", err)
	}
	cs.Color = color.RGBA{A: 255}
	cs.Shape = draw.CrossGlyph{}
	cs.Radius = vg.Points(5)
	p.Add(cs)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}

// RegressionScatter plots a target against one feature with the fitted
// line for that feature's weight and the intercept.
func RegressionScatter(x, y []float64, w, b float64, xLabel, yLabel, path string) error {
	p := plot.New()
	p.Title.Text = yLabel + " vs " + xLabel
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("report: regression scatter: %w", err)
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	xMin, xMax := x[0], x[0]
	for _, v := range x[1:] {
		if v < xMin {
			xMin = v
		}
		if v > xMax {
			xMax = v
		}
	}
	line, err := plotter.NewLine(plotter.XYs{
		{X: xMin, Y: w*xMin + b},
		{X: xMax, Y: w*xMax + b},
	})
	if err != nil {
		return fmt.Errorf("report: regression line: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)

	return p.Save(4*vg.Inch, 4*vg.Inch, path)
}
