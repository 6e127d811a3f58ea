package analysis

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var seriesColors = []color.RGBA{
	{R: 205, G: 170, B: 109, A: 255},
	{R: 64, G: 164, B: 223, A: 255},
	{R: 178, G: 94, B: 62, A: 255},
	{R: 70, G: 160, B: 80, A: 255},
	{R: 140, G: 140, B: 140, A: 255},
	{R: 230, G: 110, B: 150, A: 255},
}

// SaveProfiles writes one PNG plotting every height profile in series
// against column index. Series are drawn in name order.
func SaveProfiles(path, title string, series map[string][]float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Column"
	p.Y.Label.Text = "Height (cells)"
	p.Legend.Top = true

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		profile := series[name]
		pts := make(plotter.XYs, len(profile))
		for x, h := range profile {
			pts[x] = plotter.XY{X: float64(x), Y: h}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line %q: %w", name, err)
		}
		line.Color = seriesColors[i%len(seriesColors)]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
