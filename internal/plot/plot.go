// Package plot renders membership curves with gonum/plot: one panel per
// variable, stacked vertically, with optional reading markers.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/ventctl/internal/fuzzy"
	gonum "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default page size of a three-panel figure.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 9 * vg.Inch
)

var markerColor = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}

// Marker is a vertical line drawn on the panel of Variable at X.
type Marker struct {
	Variable string
	X        float64
	Label    string
}

// Build returns one plot per variable, in the order the variables first
// appear in curves.
func Build(curves []fuzzy.Curve, markers ...Marker) ([]*gonum.Plot, error) {
	var (
		order  []string
		byName = map[string][]fuzzy.Curve{}
	)
	for _, c := range curves {
		if _, ok := byName[c.Variable]; !ok {
			order = append(order, c.Variable)
		}
		byName[c.Variable] = append(byName[c.Variable], c)
	}

	plots := make([]*gonum.Plot, 0, len(order))
	for _, name := range order {
		p := gonum.New()
		p.Title.Text = name
		p.X.Label.Text = name
		p.X.Label.Padding = vg.Points(5)
		p.Y.Label.Text = "membership"
		p.Y.Label.Padding = vg.Points(5)
		p.Y.Min, p.Y.Max = 0, 1.05
		p.Legend.Top = true

		p.Add(plotter.NewGrid())

		var lines []any
		for _, c := range byName[name] {
			lines = append(lines, c.Term, xys(c))
		}
		if err := plotutil.AddLines(p, lines...); err != nil {
			return nil, fmt.Errorf("plot %s: %w", name, err)
		}

		for _, m := range markers {
			if m.Variable != name {
				continue
			}
			l, err := plotter.NewLine(plotter.XYs{{X: m.X, Y: 0}, {X: m.X, Y: 1.05}})
			if err != nil {
				return nil, fmt.Errorf("plot %s marker: %w", name, err)
			}
			l.Color = markerColor
			l.Width = vg.Points(1.5)
			l.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			p.Add(l)
			if m.Label != "" {
				p.Legend.Add(m.Label, l)
			}
		}
		plots = append(plots, p)
	}
	return plots, nil
}

func xys(c fuzzy.Curve) plotter.XYs {
	pts := make(plotter.XYs, len(c.X))
	for i := range c.X {
		pts[i].X = c.X[i]
		pts[i].Y = c.Y[i]
	}
	return pts
}

// Render draws plots stacked in one column and writes them to w in format
// ("png", "svg", "pdf", ...).
func Render(w io.Writer, format string, plots []*gonum.Plot, width, height vg.Length) error {
	if len(plots) == 0 {
		return fmt.Errorf("plot: nothing to render")
	}
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	dc := draw.New(c)

	rows := make([][]*gonum.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*gonum.Plot{p}
	}
	tiles := draw.Tiles{
		Rows:      len(plots),
		Cols:      1,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := gonum.Align(rows, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	_, err = c.WriteTo(w)
	return err
}

// FormatOf returns the output format implied by the extension of path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "pdf", "jpg", "jpeg", "tif", "tiff", "eps":
		return ext, nil
	case "":
		return "", fmt.Errorf("plot: %s has no extension", path)
	default:
		return "", fmt.Errorf("plot: unsupported format %q", ext)
	}
}

// Save renders plots to path at the default size.
func Save(path string, plots []*gonum.Plot) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, format, plots, DefaultWidth, DefaultHeight)
}
