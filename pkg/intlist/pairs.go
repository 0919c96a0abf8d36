package intlist

import (
	"strconv"
	"strings"

	"github.com/andrew-torda/datason/pkg/common"
)

// CheckPairs splits each line on sep and converts the two fields to
// integers, returning the x values and the y values.
// A line without the separator or with a field which is not an integer
// is a format error. A line with more than two fields is a shape error.
func CheckPairs(lines []string, sep string) (xs, ys []int, err error) {
	if sep == "" {
		return nil, nil, common.Errorf(common.KindUsage, "empty separator")
	}
	if len(lines) == 0 {
		return nil, nil, common.Errorf(common.KindEmpty, "no data lines")
	}
	xs = make([]int, 0, len(lines))
	ys = make([]int, 0, len(lines))
	for i, l := range lines {
		parts := strings.Split(l, sep)
		switch {
		case len(parts) == 1:
			return nil, nil, common.Errorf(common.KindFormat,
				"separator %q not found in data line %d: %q", sep, i+1, l)
		case len(parts) > 2:
			return nil, nil, common.Errorf(common.KindShape,
				"data line %d has %d fields, wanted 2: %q", i+1, len(parts), l)
		}
		var xy [2]int
		for j, p := range parts {
			if xy[j], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
				return nil, nil, common.Errorf(common.KindFormat,
					"data line %d is not a pair of integers: %q", i+1, l)
			}
		}
		xs = append(xs, xy[0])
		ys = append(ys, xy[1])
	}
	return xs, ys, nil
}

// CheckLists makes sure there are as many x values as y values.
// CheckPairs cannot give anything else, but lists can come from elsewhere.
func CheckLists(xs, ys []int) error {
	if len(xs) != len(ys) {
		return common.Errorf(common.KindShape,
			"data lists are not equal in length, %d x values and %d y values", len(xs), len(ys))
	}
	return nil
}

// SplitHeader gets axis labels from a header line. If there is no
// separator, everything is the x label.
func SplitHeader(line, sep string) (x, y string) {
	if sep == "" {
		return strings.TrimSpace(line), ""
	}
	x, y, _ = strings.Cut(line, sep)
	y, _, _ = strings.Cut(y, sep)
	return strings.TrimSpace(x), strings.TrimSpace(y)
}
