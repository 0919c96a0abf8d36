// 19 Oct 2026
// Package inthisto plots a histogram of integers, one per line, such as
// one column cut out of a csv file. Each integer gets its own bar and
// each bar is labelled with its count.

package inthisto

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

const Usage = "inthisto outfile [-i infile] [--header] [-t title] [-v]"

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	OutFile string
	InFile  string // empty means standard input
	Header  bool   // first line is a label, not data
	Title   string
	Verbose bool
}

// SetFlags ties the flags to a flag set.
func SetFlags(fs *flag.FlagSet, flags *CmdFlag) {
	for _, name := range []string{"i", "in"} {
		fs.StringVar(&flags.InFile, name, "", "input file, otherwise read from a pipe")
	}
	fs.BoolVar(&flags.Header, "header", false, "first line is a header, used as the x axis label")
	for _, name := range []string{"t", "title"} {
		fs.StringVar(&flags.Title, name, "", "title for the plot")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&flags.Verbose, name, false, "verbose, also print the proportion of each value")
	}
}

// PrintProportions writes the fraction of data taken by each value.
func PrintProportions(w io.Writer, props []intlist.Proportion) {
	for _, p := range props {
		fmt.Fprintf(w, "%d\t%.4f\n", p.Value, p.Frac)
	}
}

// readData gets lines, takes off the header if there is one and
// converts the rest.
func readData(flags *CmdFlag) (header string, data []int, err error) {
	lines, err := slurp.ReadLines(flags.InFile)
	if err != nil {
		return "", nil, err
	}
	lines = intlist.Clean(lines)
	if flags.Header && len(lines) > 0 {
		header, lines = lines[0], intlist.Clean(lines[1:])
	}
	if data, err = intlist.Check(lines); err != nil {
		return "", nil, fmt.Errorf("%s: %w", slurp.Describe(flags.InFile), err)
	}
	return header, data, nil
}

// Mymain is the main function after the command line has been parsed.
func Mymain(flags *CmdFlag, w io.Writer) error {
	if flags.OutFile == "" {
		return common.Errorf(common.KindUsage, "no output file. usage: %s", Usage)
	}
	vlog := common.Vlog(flags.Verbose)
	outfile := flags.OutFile
	if abs, err := filepath.Abs(outfile); err == nil {
		outfile = abs
	}
	vlog.Println("Outputting histogram to", outfile)
	vlog.Println("Reading from", slurp.Describe(flags.InFile))

	header, data, err := readData(flags)
	if err != nil {
		return err
	}
	if flags.Header {
		vlog.Printf("Using %q as header", header)
	}
	vlog.Println("Working with", len(data), "values")
	bins, err := histo.IntBins(data)
	if err != nil {
		return fmt.Errorf("%s: %w", slurp.Describe(flags.InFile), err)
	}
	if flags.Verbose {
		props, err := intlist.Proportions(data)
		if err != nil {
			return err
		}
		PrintProportions(w, props)
	}

	xlabel := "Values"
	if flags.Header && header != "" {
		xlabel = header
	}
	img, err := histo.Draw1D(bins, histo.Opts{
		Title:     flags.Title,
		XLabel:    xlabel,
		YLabel:    "Counts",
		BarLabels: true,
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
	fs := common.NewFlagSet("inthisto", os.Stderr)
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
