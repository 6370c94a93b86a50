// Package render draws the referendum choropleth with gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/internal/geo"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

const (
	// legendShare is the fraction of the image width given to the colour bar.
	legendShare = 0.16
	dpi         = 72
)

// Choropleth draws map rows shaded by their ratio on a diverging blue-red
// scale, with a colour bar legend.
type Choropleth struct {
	Title     string
	Width     vg.Length
	Height    vg.Length
	LineWidth vg.Length
	EdgeColor color.Color
}

// NewChoropleth creates a renderer from the render configuration.
func NewChoropleth(cfg config.RenderConfig) *Choropleth {
	return &Choropleth{
		Title:     cfg.Title,
		Width:     vg.Points(cfg.WidthPt),
		Height:    vg.Points(cfg.HeightPt),
		LineWidth: vg.Points(cfg.LineWidth),
		EdgeColor: color.Gray{Y: uint8(math.Round(cfg.EdgeGray * 255))},
	}
}

// Render writes the map as PNG to w. Rows without a ratio are outlined but
// not filled.
func (c *Choropleth) Render(w io.Writer, rows []domain.MapRow) error {
	cmap := colorMap(rows)

	img := vgimg.NewWith(vgimg.UseWH(c.Width, c.Height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	legendWidth := c.Width * legendShare
	mapArea := draw.Crop(dc, 0, -legendWidth, 0, 0)
	legendArea := draw.Crop(dc, c.Width-legendWidth, 0, c.Height*0.1, -c.Height*0.1)

	m := plot.New()
	m.Title.Text = c.Title
	m.HideAxes()
	m.BackgroundColor = color.Transparent

	layer := &regionLayer{
		rows:  rows,
		cmap:  cmap,
		edges: draw.LineStyle{Color: c.EdgeColor, Width: c.LineWidth},
	}
	if len(rows) > 0 {
		m.Add(layer)
		fitAspect(m, layer, mapArea)
	} else {
		m.X.Min, m.X.Max = 0, 1
		m.Y.Min, m.Y.Max = 0, 1
	}

	legend := plot.New()
	legend.HideX()
	legend.Y.Label.Text = domain.ColRatio
	legend.BackgroundColor = color.Transparent
	legend.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true})

	m.Draw(mapArea)
	legend.Draw(legendArea)

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return errors.NewRenderError("encode png", err)
	}
	return nil
}

// RenderFile renders to path, creating its directory.
func (c *Choropleth) RenderFile(path string, rows []domain.MapRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewStorageError(fmt.Sprintf("create directory for %s", path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("create %s", path), err)
	}
	if err := c.Render(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.NewStorageError(fmt.Sprintf("close %s", path), err)
	}
	return nil
}

// colorMap scales the cool-warm map to the defined ratios.
func colorMap(rows []domain.MapRow) palette.ColorMap {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		if r.HasRatio() {
			lo = math.Min(lo, r.Ratio)
			hi = math.Max(hi, r.Ratio)
		}
	}
	switch {
	case math.IsInf(lo, 1):
		lo, hi = 0, 1
	case lo == hi:
		lo, hi = lo-0.05, hi+0.05
	}

	cmap := moreland.SmoothBlueRed()
	cmap.SetMin(lo)
	cmap.SetMax(hi)
	return cmap
}

// fitAspect widens the data range so one unit spans the same length on both
// axes.
func fitAspect(p *plot.Plot, dr plot.DataRanger, area draw.Canvas) {
	xmin, xmax, ymin, ymax := dr.DataRange()
	dx, dy := xmax-xmin, ymax-ymin
	cw := float64(area.Max.X - area.Min.X)
	ch := float64(area.Max.Y-area.Min.Y) * 0.92 // title
	if dx <= 0 || dy <= 0 || cw <= 0 || ch <= 0 {
		return
	}

	if dx/dy < cw/ch {
		grow := (dy*cw/ch - dx) / 2
		xmin, xmax = xmin-grow, xmax+grow
	} else {
		grow := (dx*ch/cw - dy) / 2
		ymin, ymax = ymin-grow, ymax+grow
	}
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
}

// regionLayer is a plot.Plotter drawing one filled path per polygon.
type regionLayer struct {
	rows  []domain.MapRow
	cmap  palette.ColorMap
	edges draw.LineStyle
}

// Plot implements plot.Plotter.
func (l *regionLayer) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, row := range l.rows {
		var fill color.Color
		if row.HasRatio() {
			if col, err := l.cmap.At(row.Ratio); err == nil {
				fill = col
			}
		}

		for _, poly := range geo.Polygons(row.Geometry) {
			var path vg.Path
			for i := 0; i < poly.NumLinearRings(); i++ {
				for j, coord := range poly.LinearRing(i).Coords() {
					pt := vg.Point{X: trX(coord.X()), Y: trY(coord.Y())}
					if j == 0 {
						path.Move(pt)
					} else {
						path.Line(pt)
					}
				}
				path.Close()
			}

			if fill != nil {
				c.SetColor(fill)
				c.Fill(path)
			}
			if l.edges.Width > 0 {
				c.SetLineStyle(l.edges)
				c.Stroke(path)
			}
		}
	}
}

// DataRange implements plot.DataRanger.
func (l *regionLayer) DataRange() (xmin, xmax, ymin, ymax float64) {
	geoms := make([]geom.T, 0, len(l.rows))
	for _, r := range l.rows {
		geoms = append(geoms, r.Geometry)
	}
	b := geo.Bounds(geoms...)
	return b.Min(0), b.Max(0), b.Min(1), b.Max(1)
}
