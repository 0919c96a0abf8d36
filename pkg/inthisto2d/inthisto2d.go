// 19 Oct 2026
// Package inthisto2d plots a two dimensional histogram of pairs of
// integers, two to a line with a separator between them. Darker squares
// have more points. Counts can be shown on a log scale.

package inthisto2d

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/histo"
	"github.com/andrew-torda/datason/pkg/intlist"
	"github.com/andrew-torda/datason/pkg/slurp"
)

const Usage = "inthisto2d outfile [-i infile] [--header] [-s sep] [-l] [-t title] [-v]"

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	OutFile  string
	InFile   string // empty means standard input
	Header   bool   // first line has the axis labels
	Sep      string
	LogScale bool
	Title    string
	Verbose  bool
}

// SetFlags ties the flags to a flag set.
func SetFlags(fs *flag.FlagSet, flags *CmdFlag) {
	for _, name := range []string{"i", "in"} {
		fs.StringVar(&flags.InFile, name, "", "input file, otherwise read from a pipe")
	}
	fs.BoolVar(&flags.Header, "header", false, "first line is a header with the axis labels")
	for _, name := range []string{"s", "separator"} {
		fs.StringVar(&flags.Sep, name, "\t", "string separating the two values")
	}
	for _, name := range []string{"l", "log"} {
		fs.BoolVar(&flags.LogScale, name, false, "log scale for the counts")
	}
	for _, name := range []string{"t", "title"} {
		fs.StringVar(&flags.Title, name, "", "title for the plot")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&flags.Verbose, name, false, "verbose")
	}
}

// Mymain is the main function after the command line has been parsed.
// The image is only written if every line was a good pair.
func Mymain(flags *CmdFlag, w io.Writer) error {
	if flags.OutFile == "" {
		return common.Errorf(common.KindUsage, "no output file. usage: %s", Usage)
	}
	if flags.Sep == "" {
		return common.Errorf(common.KindUsage, "separator must not be empty")
	}
	vlog := common.Vlog(flags.Verbose)
	outfile := flags.OutFile
	if abs, err := filepath.Abs(outfile); err == nil {
		outfile = abs
	}
	vlog.Println("Outputting histogram to", outfile)
	vlog.Println("Reading from", slurp.Describe(flags.InFile))

	lines, err := slurp.ReadLines(flags.InFile)
	if err != nil {
		return err
	}
	lines = intlist.Clean(lines)
	var xlabel, ylabel string
	if flags.Header && len(lines) > 0 {
		xlabel, ylabel = intlist.SplitHeader(lines[0], flags.Sep)
		lines = intlist.Clean(lines[1:])
		vlog.Printf("Using %q and %q as axis labels", xlabel, ylabel)
	}
	xs, ys, err := intlist.CheckPairs(lines, flags.Sep)
	if err != nil {
		return fmt.Errorf("%s: %w", slurp.Describe(flags.InFile), err)
	}
	vlog.Println("Working with", len(xs), "pairs")

	grid, err := histo.IntBins2D(xs, ys)
	if err != nil {
		return fmt.Errorf("%s: %w", slurp.Describe(flags.InFile), err)
	}
	nx, ny := grid.Size()
	vlog.Printf("%d x %d bins", nx, ny)
	img, err := histo.Draw2D(grid, flags.LogScale, histo.Opts{
		Title:  flags.Title,
		XLabel: xlabel,
		YLabel: ylabel,
	})
	if err != nil {
		return err
	}
	if err := histo.SaveWarn(os.Stderr, outfile, img); err != nil {
		return err
	}
	fmt.Fprintln(w, "Plot image saved to", outfile)
	return nil
}

// Main parses args and runs.
func Main(args []string, w io.Writer) error {
	var flags CmdFlag
	fs := common.NewFlagSet("inthisto2d", os.Stderr)
	SetFlags(fs, &flags)
	pos, err := common.ParseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if err := common.NArgs(pos, 1, 1, Usage); err != nil {
		return err
	}
	flags.OutFile = pos[0]
	return Mymain(&flags, w)
}
