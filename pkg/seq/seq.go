// 20 Dec 2017

// Package seq provides records, which usually begin their lives in
// fasta format, and a reader for them.
package seq

import "fmt"

// Constants
const cmmtChar byte = '>' // and this introduces comments in fasta format

// Record is one sequence with its comment. Neither contains white space.
type Record struct {
	Cmmt string // comment, without the leading ">"
	Seq  string
}

// Len is the length of the sequence.
func (r Record) Len() int { return len(r.Seq) }

// Empty is true if there is neither a comment nor a sequence.
func (r Record) Empty() bool { return r.Cmmt == "" && r.Seq == "" }

// String returns a sequence, with its comment at the start as
// a single string. Parse will turn it back into the same record.
func (r Record) String() string {
	return fmt.Sprintf("%c%s\n%s", cmmtChar, r.Cmmt, r.Seq)
}

// Lengths returns the length of each sequence, in order.
func Lengths(recs []Record) []int {
	lens := make([]int, len(recs))
	for i, r := range recs {
		lens[i] = r.Len()
	}
	return lens
}

// TotalLen adds up the sequence lengths.
func TotalLen(recs []Record) int {
	n := 0
	for _, r := range recs {
		n += r.Len()
	}
	return n
}
