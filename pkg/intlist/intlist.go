// Package intlist checks and converts lists of integers which usually
// arrive one per line, from a file or a pipe out of awk or cut.

package intlist

import (
	"math"
	"strconv"
	"strings"

	"github.com/andrew-torda/datason/pkg/common"
)

// Clean trims white space from each line, then drops blank lines at the
// start and end. Blank lines in the middle are left for Check to complain
// about.
func Clean(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimSpace(l)
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// Check converts every line to an integer. The first line which is not
// an integer stops everything.
func Check(lines []string) ([]int, error) {
	if len(lines) == 0 {
		return nil, common.Errorf(common.KindEmpty, "no data lines")
	}
	data := make([]int, len(lines))
	for i, l := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, common.Errorf(common.KindFormat,
				"data line %d is not an integer: %q", i+1, l)
		}
		data[i] = n
	}
	return data, nil
}

// Bounds returns the smallest and largest values. data must not be empty.
func Bounds(data []int) (lo, hi int) {
	lo, hi = data[0], data[0]
	for _, d := range data[1:] {
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return lo, hi
}

// MaxBins is the most unit bins one axis of a histogram may have,
// padding included.
const MaxBins = 1 << 20

// PaddedSpan is the number of integers from lo-1 to hi+1. It is a shape
// error if that does not fit in an int or is more than limit.
func PaddedSpan(lo, hi, limit int) (int, error) {
	if hi < lo {
		return 0, common.Errorf(common.KindShape, "empty range %d to %d", lo, hi)
	}
	if lo == math.MinInt || hi == math.MaxInt {
		return 0, common.Errorf(common.KindShape,
			"values %d to %d leave no room for an empty bin at each end", lo, hi)
	}
	// the difference of two ints always fits in a uint64
	if d := uint64(hi) - uint64(lo); d > uint64(limit-3) {
		return 0, common.Errorf(common.KindShape,
			"values %d to %d are too spread out, at most %d different integers are allowed", lo, hi, limit-2)
	}
	return hi - lo + 3, nil
}

// Proportion is the fraction of the data with a given value.
type Proportion struct {
	Value int
	Frac  float64
}

// Proportions works out, for every value from min-1 to max+1, the fraction of
// data equal to that value. The two ends are always zero, so the table
// lines up with the padded histogram. The table is sorted by value.
func Proportions(data []int) ([]Proportion, error) {
	if len(data) == 0 {
		return nil, common.Errorf(common.KindEmpty, "no data for proportions")
	}
	lo, hi := Bounds(data)
	n, err := PaddedSpan(lo, hi, MaxBins)
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int)
	for _, d := range data {
		counts[d]++
	}
	total := float64(len(data))
	props := make([]Proportion, n)
	for i := range props {
		v := lo - 1 + i
		props[i] = Proportion{Value: v, Frac: float64(counts[v]) / total}
	}
	return props, nil
}
