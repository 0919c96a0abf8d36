package histo

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Opts are the decorations for a plot.
type Opts struct {
	Title     string
	XLabel    string
	YLabel    string
	BarLabels bool // write the count above each bar
	Width     int  // in pixels, 640 if not set
	Height    int  // 480 if not set
}

func (o Opts) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	return w, h
}

// newCanvas is white and, at 72 dpi, one point is one pixel.
func (o Opts) newCanvas() *vgimg.Canvas {
	w, h := o.size()
	return vgimg.New(vg.Points(float64(w)), vg.Points(float64(h)))
}

func (o Opts) newPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	return p
}

var barColor = color.RGBA{31, 119, 180, 255}

// niceStep picks a step of 1, 2 or 5 times a power of ten, so that span
// is covered by at most about maxTicks steps.
func niceStep(span float64, maxTicks int) float64 {
	raw := span / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

// ticks returns positions for tick marks between lo and hi. If minStep
// is positive, ticks are never closer than that.
func ticks(lo, hi float64, maxTicks int, minStep float64) (ts []float64, step float64) {
	if !(hi > lo) {
		return []float64{lo}, 1
	}
	step = math.Max(niceStep(hi-lo, maxTicks), minStep)
	first := math.Ceil(lo/step) * step
	for i := 0; ; i++ {
		v := first + float64(i)*step
		if v > hi+step*1e-9 {
			break
		}
		ts = append(ts, v)
	}
	return ts, step
}

// tickLabel formats v with as many decimals as step needs.
func tickLabel(v, step float64) string {
	dec := 0
	if step < 1 {
		dec = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	s := strconv.FormatFloat(v, 'f', dec, 64)
	if s == "-0" {
		s = "0"
	}
	return s
}

// stepTicks is a plot.Ticker. With minStep 1, counts and integer
// values never get fractional labels.
type stepTicks struct {
	maxTicks int
	minStep  float64
}

func (st stepTicks) Ticks(lo, hi float64) []plot.Tick {
	ts, step := ticks(lo, hi, st.maxTicks, st.minStep)
	out := make([]plot.Tick, len(ts))
	for i, v := range ts {
		out[i] = plot.Tick{Value: v, Label: tickLabel(v, step)}
	}
	return out
}

// integral says if every edge is half way between integers, which is
// how IntBins makes them.
func integral(edges []float64) bool {
	for _, e := range edges {
		if e-math.Floor(e) != 0.5 {
			return false
		}
	}
	return true
}

// Draw1D draws the bars of a histogram, with the y axis starting at zero.
// An empty histogram gives an empty white picture.
func Draw1D(h Hist1D, o Opts) (*vgimg.Canvas, error) {
	c := o.newCanvas()
	if h.NBin() == 0 {
		return c, nil
	}
	p := o.newPlot()
	bars := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, h.NBin()),
		Width:     h.Edges[1] - h.Edges[0],
		FillColor: barColor,
		LineStyle: draw.LineStyle{Color: color.White, Width: vg.Points(0.5)},
	}
	for i, n := range h.Counts {
		bars.Bins[i] = plotter.HistogramBin{Min: h.Edges[i], Max: h.Edges[i+1], Weight: float64(n)}
	}
	p.Add(bars)

	if o.BarLabels {
		xyl := plotter.XYLabels{XYs: make(plotter.XYs, h.NBin()), Labels: make([]string, h.NBin())}
		for i, n := range h.Counts {
			xyl.XYs[i] = plotter.XY{X: (h.Edges[i] + h.Edges[i+1]) / 2, Y: float64(n)}
			xyl.Labels[i] = strconv.Itoa(n)
		}
		labels, err := plotter.NewLabels(xyl)
		if err != nil {
			return nil, err
		}
		labels.Offset = vg.Point{Y: vg.Points(3)}
		for i := range labels.TextStyle {
			labels.TextStyle[i].XAlign = draw.XCenter
		}
		p.Add(labels)
	}

	minStep := 0.
	if integral(h.Edges) {
		minStep = 1
	}
	p.X.Min, p.X.Max = h.Edges[0], h.Edges[h.NBin()]
	p.X.Tick.Marker = stepTicks{8, minStep}
	p.Y.Min, p.Y.Max = 0, math.Max(1, float64(h.MaxCount())*1.08)
	p.Y.Tick.Marker = stepTicks{6, 1}
	p.Draw(draw.New(c))
	return c, nil
}

// greyLevel maps v in [0,1] to a grey, 0 is white and 1 is black.
func greyLevel(v float64) color.RGBA {
	v = math.Max(0, math.Min(1, v))
	g := uint8(math.Round(255 * (1 - v)))
	return color.RGBA{g, g, g, 255}
}

// greyMap runs from white at Min to black at Max. It is a
// palette.ColorMap so it can be shown with a plotter.ColorBar.
// Values outside the range are clamped.
type greyMap struct {
	min, max, alpha float64
}

func (g *greyMap) At(v float64) (color.Color, error) {
	if g.max == g.min {
		return greyLevel(1), nil
	}
	c := greyLevel((v - g.min) / (g.max - g.min))
	c.A = uint8(math.Round(255 * g.alpha))
	c.R, c.G, c.B = scale(c.R, c.A), scale(c.G, c.A), scale(c.B, c.A)
	return c, nil
}

// scale premultiplies a colour component.
func scale(v, a uint8) uint8 { return uint8(uint32(v) * uint32(a) / 255) }

func (g *greyMap) Max() float64           { return g.max }
func (g *greyMap) SetMax(v float64)       { g.max = v }
func (g *greyMap) Min() float64           { return g.min }
func (g *greyMap) SetMin(v float64)       { g.min = v }
func (g *greyMap) Alpha() float64         { return g.alpha }
func (g *greyMap) SetAlpha(alpha float64) { g.alpha = alpha }

func (g *greyMap) Palette(n int) palette.Palette {
	p := make(greys, n)
	for i := range p {
		v := 1.
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		p[i], _ = g.At(g.min + v*(g.max-g.min))
	}
	return p
}

type greys []color.Color

func (p greys) Colors() []color.Color { return p }

// gridZ shows a Grid to plotter.NewHeatMap. On a log scale, empty cells
// are NaN so they are drawn white, whatever the scale says.
type gridZ struct {
	g        *Grid
	logScale bool
}

func (z gridZ) Dims() (c, r int) { return z.g.Size() }
func (z gridZ) X(c int) float64  { return float64(z.g.X0 + c) }
func (z gridZ) Y(r int) float64  { return float64(z.g.Y0 + r) }
func (z gridZ) Z(c, r int) float64 {
	n := float64(z.g.Counts.Mat[r][c])
	if !z.logScale {
		return n
	}
	if n <= 0 {
		return math.NaN()
	}
	return math.Log10(n)
}

// zRange is the range of values the grey scale covers. Linear starts at
// zero, log at the smallest count there is.
func zRange(g *Grid, logScale bool) (lo, hi float64) {
	minPos, maxCnt := g.Bounds()
	lo, hi = 0, float64(maxCnt)
	if logScale {
		lo, hi = math.Log10(float64(minPos)), math.Log10(float64(maxCnt))
	}
	if hi <= lo { // all counts the same, they should be black
		lo = hi - 1
	}
	return lo, hi
}

// colorBarWidth is room on the right for the scale and its labels.
const colorBarWidth = 80

// Draw2D draws the grid as grey squares, darker for more points, with a
// colour bar on the right. An empty grid gives an empty white picture.
func Draw2D(g *Grid, logScale bool, o Opts) (*vgimg.Canvas, error) {
	c := o.newCanvas()
	nx, ny := g.Size()
	if nx == 0 || ny == 0 {
		return c, nil
	}
	lo, hi := zRange(g, logScale)
	cmap := &greyMap{min: lo, max: hi, alpha: 1}

	p := o.newPlot()
	heat := plotter.NewHeatMap(gridZ{g, logScale}, cmap.Palette(255))
	heat.Min, heat.Max = lo, hi
	heat.Underflow, heat.Overflow, heat.NaN = color.White, color.Black, color.White
	p.Add(heat)
	p.X.Tick.Marker = stepTicks{8, 1}
	p.Y.Tick.Marker = stepTicks{6, 1}

	bar := plot.New()
	bar.HideX()
	bar.Y.Label.Text = "Counts"
	if logScale {
		bar.Y.Label.Text = "log10 Counts"
	}
	bar.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: true, Colors: 255})

	dc := draw.New(c)
	w := dc.Max.X - dc.Min.X
	p.Draw(draw.Crop(dc, 0, -vg.Points(colorBarWidth), 0, 0))
	// leave out the heights of the title and the x axis
	bar.Draw(draw.Crop(dc, w-vg.Points(colorBarWidth), 0, vg.Points(45), -vg.Points(30)))
	return c, nil
}
