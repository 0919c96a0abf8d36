// Reader for fasta format files.

package seq

import (
	"bytes"
	"fmt"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/slurp"
	"github.com/andrew-torda/datason/pkg/white"
)

// A comment is terminated by a newline. A sequence is terminated by the
// comment character ">" which starts the next record.

type lexer struct {
	input []byte
	recs  []Record
	cmmt  []byte // comment of the record being built
	err   error
}

type stateFn func(*lexer) stateFn

// outside is where we start. Anything before the first ">" is skipped.
// Some files have a few lines of chat before the sequences.
func outside(l *lexer) stateFn {
	ndx := bytes.IndexByte(l.input, cmmtChar)
	if ndx == -1 {
		l.err = common.Errorf(common.KindFormat,
			"no %q found in input. It does not look like a fasta file", cmmtChar)
		return nil
	}
	l.input = l.input[ndx+1:]
	return gcmmt
}

// We are reading a comment. It stops at a newline, but a ">" before the
// newline means the record had no sequence and the next one starts.
func gcmmt(l *lexer) stateFn {
	ndx := bytes.IndexAny(l.input, "\n>")
	if ndx == -1 { // Comment runs to the end. No sequence.
		l.cmmt = l.input
		l.input = nil
		l.emit(nil)
		return nil
	}
	term := l.input[ndx]
	l.cmmt = l.input[:ndx]
	l.input = l.input[ndx+1:]
	if term == cmmtChar {
		l.emit(nil)
		return gcmmt
	}
	return gseq
}

// We are reading a sequence
func gseq(l *lexer) stateFn {
	ndx := bytes.IndexByte(l.input, cmmtChar)
	if ndx == -1 {
		l.emit(l.input)
		l.input = nil
		return nil
	}
	l.emit(l.input[:ndx])
	l.input = l.input[ndx+1:]
	return gcmmt
}

// emit finishes a record. White space goes from comment and sequence.
// We work on copies, since Remove acts in place and the input belongs
// to the caller.
func (l *lexer) emit(s []byte) {
	c := append([]byte(nil), l.cmmt...)
	s = append([]byte(nil), s...)
	white.Remove(&c)
	white.Remove(&s)
	l.cmmt = nil
	rec := Record{Cmmt: string(c), Seq: string(s)}
	if rec.Empty() && len(l.recs) == 0 { // leading junk record
		return
	}
	l.recs = append(l.recs, rec)
}

// Parse takes the text of a fasta file and breaks it into records.
// It is an error if there is no ">" at all. A file with only empty
// records gives no records and no error.
func Parse(src []byte) ([]Record, error) {
	l := lexer{input: src}
	for state := outside; state != nil; {
		state = state(&l)
	}
	return l.recs, l.err
}

// Readfile takes a filename and reads sequences from it. An empty name
// means standard input.
func Readfile(fname string) ([]Record, error) {
	src, err := slurp.ReadAll(fname)
	if err != nil {
		return nil, err
	}
	recs, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", slurp.Describe(fname), err)
	}
	return recs, nil
}
