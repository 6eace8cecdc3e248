// Package scatter renders the IQ vs bench press scatter plot.
package scatter

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kina524/sql-data-analyzy-app/internal/models"
)

// Correlation returns the Pearson coefficient between iq and bench_press.
// It reports false when fewer than two records exist.
func Correlation(users []models.User) (float64, bool) {
	if len(users) < 2 {
		return 0, false
	}
	xs := make([]float64, len(users))
	ys := make([]float64, len(users))
	for i, u := range users {
		xs[i] = float64(u.IQ)
		ys[i] = float64(u.BenchPress)
	}
	return stat.Correlation(xs, ys, nil), true
}

// Build assembles the scatter plot for a non-empty record set, annotating the
// correlation coefficient when more than one record exists.
func Build(users []models.User) (*plot.Plot, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no records to plot")
	}

	pts := make(plotter.XYs, len(users))
	for i, u := range users {
		pts[i].X = float64(u.IQ)
		pts[i].Y = float64(u.BenchPress)
	}

	p := plot.New()
	p.Title.Text = "Bench press by IQ"
	p.X.Label.Text = "IQ"
	p.Y.Label.Text = "Bench press (kg)"
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("build scatter: %w", err)
	}
	s.GlyphStyle.Color = color.RGBA{R: 0xd6, G: 0x2b, B: 0x2b, A: 0xb3}
	s.GlyphStyle.Radius = vg.Points(4)
	p.Add(s)

	if r, ok := Correlation(users); ok {
		p.Title.Text = fmt.Sprintf("Bench press by IQ (correlation: %.3f)", r)
	}
	return p, nil
}

// UniqueFilename probes dir for base+ext, then base2+ext, base3+ext and so on,
// returning the first name not already taken.
func UniqueFilename(dir, base, ext string) string {
	name := base + ext
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		return name
	}
	for counter := 2; ; counter++ {
		name = fmt.Sprintf("%s%d%s", base, counter, ext)
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return name
		}
	}
}

// SaveTo writes the plot as a PNG into dir under a collision-free name and
// returns the name used.
func SaveTo(p *plot.Plot, dir string) (string, error) {
	name := UniqueFilename(dir, "scatter", ".png")
	if err := p.Save(10*vg.Inch, 6*vg.Inch, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("save scatter: %w", err)
	}
	return name, nil
}
