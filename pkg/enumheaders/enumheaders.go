// 19 Oct 2026
// Package enumheaders prints the column headers of a file, numbered, so
// one does not have to count columns by hand before reaching for cut or awk.

package enumheaders

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/slurp"
	"github.com/andrew-torda/datason/pkg/zwrap"
)

const Usage = "enum_headers [-s sep] [--index n] [-v] in_file"

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	InFile  string
	Sep     string // separator between columns
	Index   int    // number given to the first column
	Verbose bool
}

// SetFlags ties the flags to a flag set.
func SetFlags(fs *flag.FlagSet, flags *CmdFlag) {
	for _, name := range []string{"s", "sep"} {
		fs.StringVar(&flags.Sep, name, ",", "string separating columns")
	}
	fs.IntVar(&flags.Index, "index", 0, "index of the first column (usually 0 or 1)")
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&flags.Verbose, name, false, "verbose")
	}
}

// FirstLine reads up to the first newline. The newline (and a carriage
// return before it) are not returned.
func FirstLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Enumerate splits line on sep and prints each field with its number,
// starting from start. It returns the number of fields. An empty line
// has no fields.
func Enumerate(w io.Writer, line, sep string, start int) int {
	if line == "" {
		return 0
	}
	fields := strings.Split(line, sep)
	for i, f := range fields {
		fmt.Fprintf(w, "%d - %s\n", start+i, f)
	}
	return len(fields)
}

// CountFields is the number of fields Enumerate will print.
func CountFields(line, sep string) int {
	if line == "" {
		return 0
	}
	return strings.Count(line, sep) + 1
}

// openMaybeZ opens a file, or standard input, decompressing if needed.
func openMaybeZ(fname string) (io.ReadCloser, error) {
	var fp io.ReadCloser = os.Stdin
	if !slurp.IsStdin(fname) {
		var err error
		if fp, err = os.Open(fname); err != nil {
			return nil, common.Wrap(common.KindIO, err)
		}
	}
	fpz, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, common.Wrap(common.KindIO, err)
	}
	return fpz, nil
}

// Mymain prints the headers of flags.InFile to w.
func Mymain(flags *CmdFlag, w io.Writer) error {
	if flags.Sep == "" {
		return common.Errorf(common.KindUsage, "separator must not be empty")
	}
	vlog := common.Vlog(flags.Verbose)
	vlog.Printf("separator %q, first index %d", flags.Sep, flags.Index)
	name := flags.InFile
	if abs, err := filepath.Abs(name); err == nil && !slurp.IsStdin(name) {
		name = abs
	}
	fmt.Fprintln(w, "Reading file:", name)

	fp, err := openMaybeZ(flags.InFile)
	if err != nil {
		return err
	}
	defer fp.Close()
	line, err := FirstLine(fp)
	if err != nil {
		return common.Errorf(common.KindIO, "reading %s: %w", name, err)
	}
	fmt.Fprintf(w, "The file contains the following %d column headers as indexed: "+
		"(starting with index of %d as first index)\n", CountFields(line, flags.Sep), flags.Index)
	Enumerate(w, line, flags.Sep, flags.Index)
	return nil
}

// Main parses args and runs.
func Main(args []string, w io.Writer) error {
	var flags CmdFlag
	fs := common.NewFlagSet("enum_headers", os.Stderr)
	SetFlags(fs, &flags)
	pos, err := common.ParseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if err := common.NArgs(pos, 1, 1, Usage); err != nil {
		return err
	}
	flags.InFile = pos[0]
	return Mymain(&flags, w)
}
