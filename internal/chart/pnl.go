package chart

import (
	"fmt"
	"image/color"
	"math"

	"quantlab/internal/backtest"
	"quantlab/internal/model"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	lineColor = color.RGBA{B: 255, A: 255}
	buyColor  = color.RGBA{G: 160, A: 255}
	sellColor = color.RGBA{R: 220, A: 255}
)

// Options sizes the rendered chart.
type Options struct {
	Width  vg.Length
	Height vg.Length
	// MaxTicks bounds the number of date labels on the x axis.
	MaxTicks int
}

func DefaultOptions() Options {
	return Options{Width: 14 * vg.Inch, Height: 8 * vg.Inch, MaxTicks: 10}
}

// PNL builds a plot of the smoothed cumulative P&L with buy markers (up
// triangles) and sell markers (down triangles). smoothed must have one value
// per ledger row.
func PNL(res *backtest.Result, smoothed []float64, opts Options) (*plot.Plot, error) {
	if len(smoothed) != len(res.Ledger) {
		return nil, fmt.Errorf("smoothed series has %d points, ledger has %d", len(smoothed), len(res.Ledger))
	}
	if len(smoothed) == 0 {
		return nil, fmt.Errorf("nothing to plot")
	}

	p := plot.New()
	p.Title.Text = "Cumulative Profit & Loss Over Time"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Cumulative P&L ($)"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(xys(smoothed, nil))
	if err != nil {
		return nil, err
	}
	line.Color = lineColor
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Smoothed Cumulative P&L", line)

	var buys, sells []int
	for i, row := range res.Ledger {
		switch row.Signal {
		case model.SignalBuy:
			buys = append(buys, i)
		case model.SignalSell:
			sells = append(sells, i)
		}
	}
	if err := addMarkers(p, "Buy Signal", xys(smoothed, buys), draw.TriangleGlyph{}, buyColor); err != nil {
		return nil, err
	}
	if err := addMarkers(p, "Sell Signal", xys(smoothed, sells), downTriangle{}, sellColor); err != nil {
		return nil, err
	}

	p.X.Tick.Marker = plot.ConstantTicks(dateTicks(res.Ledger, opts.MaxTicks))
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.Legend.Top = true
	return p, nil
}

// SavePNL renders the chart to path; the extension picks the format.
func SavePNL(path string, res *backtest.Result, smoothed []float64, opts Options) error {
	p, err := PNL(res, smoothed, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

func addMarkers(p *plot.Plot, label string, pts plotter.XYs, shape draw.GlyphDrawer, c color.Color) error {
	if len(pts) == 0 {
		return nil
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Shape = shape
	sc.GlyphStyle.Color = c
	sc.GlyphStyle.Radius = vg.Points(6)
	p.Add(sc)
	p.Legend.Add(label, sc)
	return nil
}

// xys returns the points of ys at idx, or all of them when idx is nil.
func xys(ys []float64, idx []int) plotter.XYs {
	if idx == nil {
		out := make(plotter.XYs, len(ys))
		for i, y := range ys {
			out[i] = plotter.XY{X: float64(i), Y: y}
		}
		return out
	}
	out := make(plotter.XYs, len(idx))
	for k, i := range idx {
		out[k] = plotter.XY{X: float64(i), Y: ys[i]}
	}
	return out
}

// dateTicks labels every len/maxTicks-th row with its date.
func dateTicks(ledger []backtest.LedgerRow, maxTicks int) []plot.Tick {
	if maxTicks < 1 {
		maxTicks = 1
	}
	step := len(ledger) / maxTicks
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := 0; i < len(ledger); i += step {
		ticks = append(ticks, plot.Tick{Value: float64(i), Label: ledger[i].Date})
	}
	return ticks
}

// downTriangle is a filled triangle pointing down.
type downTriangle struct{}

func (downTriangle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	c.FillPolygon(sty.Color, []vg.Point{
		{X: pt.X - r, Y: pt.Y + r},
		{X: pt.X + r, Y: pt.Y + r},
		{X: pt.X, Y: pt.Y - r},
	})
}
