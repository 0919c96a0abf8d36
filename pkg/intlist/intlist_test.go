package intlist_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/datason/pkg/common"
	. "github.com/andrew-torda/datason/pkg/intlist"
)

func TestClean(t *testing.T) {
	got := Clean([]string{"", "  ", "1", " 2 ", "", "3\r", "", ""})
	want := []string{"1", "2", "", "3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("clean (-want +got):\n%s", diff)
	}
	if got := Clean([]string{"", ""}); len(got) != 0 {
		t.Fatalf("all blank gave %q", got)
	}
}

func TestCheck(t *testing.T) {
	data, err := Check([]string{"1", "-2", "+3", "0"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, -2, 3, 0}, data); diff != "" {
		t.Fatal(diff)
	}
	for _, bad := range [][]string{{"1", "x"}, {"1.5"}, {"1", "", "2"}} {
		_, err := Check(bad)
		if common.KindOf(err) != common.KindFormat {
			t.Fatalf("%q should be a format error, got %v", bad, err)
		}
	}
	if _, err := Check(nil); common.KindOf(err) != common.KindEmpty {
		t.Fatal("no data should be an empty error, got", err)
	}
}

func TestProportions(t *testing.T) {
	data, err := Check([]string{"1", "2", "2", "3"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Proportion{{0, 0}, {1, 0.25}, {2, 0.5}, {3, 0.25}, {4, 0}}
	props, err := Proportions(data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Fatalf("proportions (-want +got):\n%s", diff)
	}
	if _, err := Proportions(nil); common.KindOf(err) != common.KindEmpty {
		t.Fatal("no data should be an empty error, got", err)
	}
}

// TestHugeRange has values at the ends of the int range, where padding
// or the span itself would wrap around.
func TestHugeRange(t *testing.T) {
	for _, data := range [][]int{
		{math.MaxInt},
		{math.MinInt},
		{math.MinInt + 1, math.MaxInt - 1},
		{-5, MaxBins},
	} {
		if props, err := Proportions(data); common.KindOf(err) != common.KindShape {
			t.Fatalf("%v gave %d rows and error %v", data, len(props), err)
		}
	}
	props, err := Proportions([]int{math.MaxInt - 1})
	if err != nil || len(props) != 3 || props[2].Value != math.MaxInt {
		t.Fatalf("one below the top got %v %v", props, err)
	}
}

func TestPaddedSpan(t *testing.T) {
	type tcase struct {
		lo, hi, limit int
		n             int
		ok            bool
	}
	for _, tc := range []tcase{
		{1, 3, 10, 5, true},
		{0, 0, 3, 3, true},
		{0, 7, 10, 10, true},
		{0, 8, 10, 0, false},
		{3, 1, 10, 0, false},
		{math.MinInt + 1, math.MaxInt - 1, MaxBins, 0, false},
	} {
		n, err := PaddedSpan(tc.lo, tc.hi, tc.limit)
		if (err == nil) != tc.ok || n != tc.n {
			t.Fatalf("%d..%d limit %d gave %d %v", tc.lo, tc.hi, tc.limit, n, err)
		}
		if err != nil && common.KindOf(err) != common.KindShape {
			t.Fatal("wrong kind of error", err)
		}
	}
}

// TestProportionSum checks random lists add up to one
func TestProportionSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 100; iter++ {
		data := make([]int, 1+rng.Intn(200))
		for i := range data {
			data[i] = rng.Intn(40) - 20
		}
		props, err := Proportions(data)
		if err != nil {
			t.Fatal(err)
		}
		lo, hi := Bounds(data)
		if len(props) != hi-lo+3 {
			t.Fatalf("table has %d rows for range %d..%d", len(props), lo, hi)
		}
		sum := 0.
		for i, p := range props {
			if p.Value != lo-1+i {
				t.Fatalf("row %d has value %d", i, p.Value)
			}
			sum += p.Frac
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("proportions sum to %g", sum)
		}
	}
}

func TestBounds(t *testing.T) {
	if lo, hi := Bounds([]int{3, -1, 7, 2}); lo != -1 || hi != 7 {
		t.Fatalf("bounds got %d %d", lo, hi)
	}
}

func ExampleProportions() {
	props, _ := Proportions([]int{5, 5, 6, 8})
	for _, p := range props {
		fmt.Printf("%d %.2f\n", p.Value, p.Frac)
	}
	// Output:
	// 4 0.00
	// 5 0.50
	// 6 0.25
	// 7 0.00
	// 8 0.25
	// 9 0.00
}
