// 25 may 2025
// Package seqstats works out summary numbers for a set of sequences:
// GC content and the mean, largest, smallest and median length.

package seqstats

import (
	"github.com/aclements/go-moremath/stats"
	"github.com/vearutop/dynhist-go"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/seq"
)

// gcStrict and gcInclusive say which symbols count towards GC content.
// The inclusive set has the ambiguity codes which could be a G or C.
// Only upper case symbols are counted.
var gcStrict, gcInclusive [256]bool

func init() {
	for _, c := range []byte("GC") {
		gcStrict[c] = true
	}
	for _, c := range []byte("GCRYKMSBDHVN") {
		gcInclusive[c] = true
	}
}

// Stats holds the results. Lengths are sequence lengths after white
// space has been removed.
type Stats struct {
	GC     float64 // fraction of symbols which are G or C
	Mean   float64
	Max    int
	Min    int
	Median float64
	NSeq   int // number of sequences
	Total  int // total number of symbols
}

// Tuple gives the numbers in the traditional order
// GC content, mean, max, min, median.
func (s Stats) Tuple() (float64, float64, int, int, float64) {
	return s.GC, s.Mean, s.Max, s.Min, s.Median
}

// gcCount counts the symbols in s which are in set.
func gcCount(s string, set *[256]bool) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if set[s[i]] {
			n++
		}
	}
	return n
}

// Calc works out the statistics. Ambiguous symbols that might be G or C
// are counted as GC, unless strict is set, when only G and C count.
// With no sequences or only empty sequences there is nothing to divide
// by, so that is an error.
func Calc(recs []seq.Record, strict bool) (Stats, error) {
	var st Stats
	if len(recs) == 0 {
		return st, common.Errorf(common.KindEmpty, "no sequences, cannot calculate statistics")
	}
	set := &gcInclusive
	if strict {
		set = &gcStrict
	}
	ngc := 0
	sample := stats.Sample{Xs: make([]float64, len(recs))}
	for i, r := range recs {
		ngc += gcCount(r.Seq, set)
		sample.Xs[i] = float64(r.Len())
	}
	st.Total = seq.TotalLen(recs)
	if st.Total == 0 {
		return st, common.Errorf(common.KindEmpty, "%d sequences, but all have zero length", len(recs))
	}
	st.NSeq = len(recs)
	st.GC = float64(ngc) / float64(st.Total)
	st.Mean = sample.Mean()
	lo, hi := sample.Bounds()
	st.Min, st.Max = int(lo), int(hi)
	sample.Sort()
	st.Median = sample.Quantile(0.5)
	return st, nil
}

// LengthSummary is a text picture of how lengths are distributed,
// for printing in verbose mode.
func LengthSummary(lens []int, buckets int) string {
	hist := dynhist.Collector{
		BucketsLimit: buckets,
		WeightFunc:   dynhist.ExpWidth(1.2, 1),
		PrintSum:     true,
	}
	for _, l := range lens {
		hist.Add(float64(l))
	}
	return hist.String()
}
