// Package histo bins numbers and draws histograms into images.
//
// One dimensional histograms come in two flavours. Bins divides the range
// of the data into a given number of equal bins, the way plotting packages
// usually do it. IntBins gives every integer its own unit width bin,
// centred on the integer, with one empty bin padding each end.
// Two dimensional histograms of integers use the same padded unit bins
// along both axes, with the counts kept in a matrix.
package histo

import (
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/intlist"
)

// MaxCells limits the size of a two dimensional grid.
const MaxCells = 1 << 24

// Hist1D is a binned histogram. Bin i runs from Edges[i] to Edges[i+1],
// so there is one more edge than there are counts.
type Hist1D struct {
	Edges  []float64
	Counts []int
}

// NBin is the number of bins.
func (h Hist1D) NBin() int { return len(h.Counts) }

// MaxCount is the tallest bar.
func (h Hist1D) MaxCount() int {
	m := 0
	for _, c := range h.Counts {
		m = max(m, c)
	}
	return m
}

// Bins puts values into n equal width bins from the smallest to the largest
// value. The last bin includes its upper edge. If all values are the same,
// the range is widened by a half on each side.
func Bins(values []float64, n int) Hist1D {
	if len(values) == 0 {
		return Hist1D{}
	}
	n = max(n, 1)
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	width := (hi - lo) / float64(n)
	h := Hist1D{Edges: make([]float64, n+1), Counts: make([]int, n)}
	for i := range h.Edges {
		h.Edges[i] = lo + float64(i)*width
	}
	h.Edges[n] = hi
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n { // v == hi, or rounding just under it
			i = n - 1
		}
		h.Counts[i]++
	}
	return h
}

// IntBins gives each integer from min-1 to max+1 a bin of its own. Bin i
// is centred on min-1+i. Values too far apart to bin are a shape error.
func IntBins(values []int) (Hist1D, error) {
	if len(values) == 0 {
		return Hist1D{}, nil
	}
	lo, hi := intlist.Bounds(values)
	n, err := intlist.PaddedSpan(lo, hi, intlist.MaxBins)
	if err != nil {
		return Hist1D{}, err
	}
	first := lo - 1
	h := Hist1D{Edges: make([]float64, n+1), Counts: make([]int, n)}
	for i := range h.Edges {
		h.Edges[i] = float64(first) + float64(i) - 0.5
	}
	for _, v := range values {
		h.Counts[v-first]++
	}
	return h, nil
}

// Grid holds counts for a two dimensional histogram of integers.
// Counts.Mat[iy][ix] is the number of points at (X0+ix, Y0+iy).
type Grid struct {
	X0, Y0 int
	Counts *matrix.FMatrix2d
}

// Size gives the number of bins along x and along y.
func (g *Grid) Size() (nx, ny int) {
	nrow, ncol := g.Counts.Size()
	return ncol, nrow
}

// At is the count for the point (x, y).
func (g *Grid) At(x, y int) float32 {
	nx, ny := g.Size()
	ix, iy := x-g.X0, y-g.Y0
	if ix < 0 || iy < 0 || ix >= nx || iy >= ny {
		return 0
	}
	return g.Counts.Mat[iy][ix]
}

// Bounds is the smallest non-zero count and the largest count.
// An empty grid gives zero for both.
func (g *Grid) Bounds() (minPos, maxCnt float32) {
	for _, row := range g.Counts.Mat {
		for _, c := range row {
			if c > 0 && (minPos == 0 || c < minPos) {
				minPos = c
			}
			maxCnt = max(maxCnt, c)
		}
	}
	return minPos, maxCnt
}

// IntBins2D counts points on a grid of unit bins, padded by one bin on
// each side along both axes. xs and ys must be the same length.
// A grid which would be too big is a shape error and nothing is allocated.
func IntBins2D(xs, ys []int) (*Grid, error) {
	if err := intlist.CheckLists(xs, ys); err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return &Grid{Counts: matrix.NewFMatrix2d(0, 0)}, nil
	}
	xlo, xhi := intlist.Bounds(xs)
	ylo, yhi := intlist.Bounds(ys)
	nx, err := intlist.PaddedSpan(xlo, xhi, intlist.MaxBins)
	if err != nil {
		return nil, err
	}
	ny, err := intlist.PaddedSpan(ylo, yhi, intlist.MaxBins)
	if err != nil {
		return nil, err
	}
	if nx*ny > MaxCells {
		return nil, common.Errorf(common.KindShape,
			"a %d by %d grid is too big, at most %d bins are allowed", nx, ny, MaxCells)
	}
	g := &Grid{X0: xlo - 1, Y0: ylo - 1}
	g.Counts = matrix.NewFMatrix2d(ny, nx)
	for i := range xs {
		g.Counts.Mat[ys[i]-g.Y0][xs[i]-g.X0]++
	}
	return g, nil
}
