// 3 Aug 2020
// Package slurp gets a whole input into memory. Input comes from a
// named file or from standard input. Plain files are mapped, rather than
// read, since that was the fastest way to get at a big fasta file.
// Compressed input is recognised and decompressed.

package slurp

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/term"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/zwrap"
)

// stdinIsTerminal is a variable so tests can pretend there is a pipe.
var stdinIsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }

// IsStdin says if a file name means standard input.
func IsStdin(fname string) bool { return fname == "" || fname == "-" }

// ReadAll returns the contents of fname. An empty name or "-" means standard
// input, which must not be a terminal. We will not sit and wait for
// somebody to type in a fasta file.
func ReadAll(fname string) ([]byte, error) {
	if IsStdin(fname) {
		if stdinIsTerminal() {
			return nil, common.Errorf(common.KindUsage, "no input file and nothing piped to standard input")
		}
		return ReadFrom(os.Stdin)
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, common.Wrap(common.KindIO, err)
	}
	defer fp.Close()

	fpz, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return nil, common.Errorf(common.KindIO, "%s: %w", fname, err)
	}
	if fpz.Compressed() {
		return readAll(fpz, fname)
	}
	return byMmap(fp)
}

// ReadFrom reads everything from r, decompressing if necessary.
func ReadFrom(r io.Reader) ([]byte, error) {
	fpz, err := zwrap.WrapMaybe(io.NopCloser(r))
	if err != nil {
		return nil, common.Wrap(common.KindIO, err)
	}
	return readAll(fpz, "standard input")
}

func readAll(r io.Reader, name string) ([]byte, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, common.Errorf(common.KindIO, "reading %s: %w", name, err)
	}
	return b, nil
}

// byMmap maps the file and copies the contents out, so the caller does
// not have to worry about unmapping.
func byMmap(fp *os.File) ([]byte, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, common.Wrap(common.KindIO, err)
	}
	if fi.Size() == 0 { // mmap refuses zero length files
		return []byte{}, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, common.Errorf(common.KindIO, "mapping %s: %w", fp.Name(), err)
	}
	defer mm.Unmap()
	b := make([]byte, len(mm))
	copy(b, mm)
	return b, nil
}

// Lines splits b into lines. A trailing carriage return is removed from each
// line. If b ends with a newline, there is an empty last line, just as
// splitting the string would give.
func Lines(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	raw := bytes.Split(b, []byte{'\n'})
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(bytes.TrimSuffix(l, []byte{'\r'}))
	}
	return lines
}

// ReadLines is ReadAll followed by Lines.
func ReadLines(fname string) ([]string, error) {
	b, err := ReadAll(fname)
	if err != nil {
		return nil, err
	}
	return Lines(b), nil
}

// Describe gives a name for messages.
func Describe(fname string) string {
	if IsStdin(fname) {
		return "standard input"
	}
	return fmt.Sprintf("%q", fname)
}
