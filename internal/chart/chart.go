package chart

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"datacli/internal/dataset"
	"datacli/internal/errors"
)

// Renderer renders charts from dataset columns into PNG files
type Renderer struct {
	outDir string
	bins   int
	logger *slog.Logger
}

// NewRenderer creates a chart renderer writing into outDir.
// bins controls the histogram bin count.
func NewRenderer(outDir string, bins int, logger *slog.Logger) *Renderer {
	if bins <= 0 {
		bins = 16
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{outDir: outDir, bins: bins, logger: logger}
}

// Scatter renders a scatter plot of two numeric columns and returns the
// output file path.
func (r *Renderer) Scatter(ds *dataset.Dataset, xCol, yCol string) (string, error) {
	xs, err := ds.NumericColumn(xCol)
	if err != nil {
		return "", err
	}
	ys, err := ds.NumericColumn(yCol)
	if err != nil {
		return "", err
	}
	if len(xs) == 0 {
		return "", errors.NewChartError("no rows to plot", nil)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", yCol, xCol)
	p.X.Label.Text = xCol
	p.Y.Label.Text = yCol
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return "", errors.NewChartError("failed to build scatter plot", err)
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)

	return r.save(p, fileName("scatter", xCol, yCol))
}

// Histogram renders a histogram of one numeric column and returns the output
// file path.
func (r *Renderer) Histogram(ds *dataset.Dataset, col string) (string, error) {
	values, err := ds.NumericColumn(col)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", errors.NewChartError("no rows to plot", nil)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", col)
	p.X.Label.Text = col
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(plotter.Values(values), r.bins)
	if err != nil {
		return "", errors.NewChartError("failed to build histogram", err)
	}
	h.FillColor = color.RGBA{R: 100, G: 160, B: 220, A: 255}
	p.Add(h)

	return r.save(p, fileName("histogram", col))
}

// BoxPlot renders a box plot of one numeric column and returns the output
// file path.
func (r *Renderer) BoxPlot(ds *dataset.Dataset, col string) (string, error) {
	values, err := ds.NumericColumn(col)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", errors.NewChartError("no rows to plot", nil)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Box plot of %s", col)
	p.Y.Label.Text = col

	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return "", errors.NewChartError("failed to build box plot", err)
	}
	p.Add(b)
	p.NominalX(col)

	return r.save(p, fileName("boxplot", col))
}

// save writes the plot as a PNG into the output directory
func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return "", errors.NewChartError("failed to create chart directory", err)
	}
	path := filepath.Join(r.outDir, name)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", errors.NewChartError("failed to save chart", err)
	}
	r.logger.Info("chart rendered", slog.String("path", path))
	return path, nil
}

// unsafeChars matches characters that should not appear in file names
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// fileName builds a deterministic PNG name from the plot kind and columns
func fileName(kind string, cols ...string) string {
	parts := make([]string, 0, len(cols)+1)
	parts = append(parts, kind)
	for _, c := range cols {
		parts = append(parts, unsafeChars.ReplaceAllString(c, "_"))
	}
	return strings.Join(parts, "_") + ".png"
}
