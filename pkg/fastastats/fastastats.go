// 19 Oct 2026
// Package fastastats reads a fasta file, prints the GC content and
// the mean, maximum, minimum and median sequence length, and saves a
// histogram of sequence lengths.

package fastastats

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/histo"
	"github.com/andrew-torda/datason/pkg/seq"
	"github.com/andrew-torda/datason/pkg/seqstats"
	"github.com/andrew-torda/datason/pkg/slurp"
)

const Usage = "fastastats -o outfile [-i infile] [-g] [-b bins] [-t title] [-v]"

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	OutFile string // histogram image
	InFile  string // empty means standard input
	Strict  bool   // only G and C count, not ambiguity codes
	NBin    int
	Title   string
	Verbose bool
}

// SetFlags ties the flags to a flag set. Each has a short and long name.
func SetFlags(fs *flag.FlagSet, flags *CmdFlag) {
	for _, name := range []string{"o", "out"} {
		fs.StringVar(&flags.OutFile, name, "", "path where the histogram of lengths is saved (required)")
	}
	for _, name := range []string{"i", "in"} {
		fs.StringVar(&flags.InFile, name, "", "input fasta file, otherwise read from a pipe")
	}
	// The long name is historical. Setting it turns off the inclusive set.
	for _, name := range []string{"g", "gc_inclusive"} {
		fs.BoolVar(&flags.Strict, name, false,
			"strict GC content, only G and C are counted. Without it, symbols that could be G or C count too")
	}
	for _, name := range []string{"b", "bins"} {
		fs.IntVar(&flags.NBin, name, 200, "number of bins in histogram")
	}
	for _, name := range []string{"t", "title"} {
		fs.StringVar(&flags.Title, name, "Fasta lengths", "histogram title")
	}
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&flags.Verbose, name, false, "verbose")
	}
}

// printStats writes the numbers in the order people are used to.
func printStats(w io.Writer, st seqstats.Stats) {
	fmt.Fprintln(w, "Average length:", st.Mean)
	fmt.Fprintln(w, "Maximum length:", st.Max)
	fmt.Fprintln(w, "Minimum length:", st.Min)
	fmt.Fprintln(w, "Median length: ", st.Median)
	fmt.Fprintln(w, "GC Content:    ", st.GC)
}

// Mymain is the main function after the command line has been parsed.
// Nothing is written to the image file unless the statistics worked.
func Mymain(flags *CmdFlag, w io.Writer) error {
	if flags.OutFile == "" {
		return common.Errorf(common.KindUsage, "no output file given. usage: %s", Usage)
	}
	if flags.NBin < 1 {
		return common.Errorf(common.KindUsage, "number of bins must be positive, not %d", flags.NBin)
	}
	vlog := common.Vlog(flags.Verbose)
	if slurp.IsStdin(flags.InFile) {
		vlog.Println("No in file provided, using pipe as input")
	} else {
		vlog.Println("Importing", flags.InFile)
	}

	recs, err := seq.Readfile(flags.InFile)
	if err != nil {
		return err
	}
	lens := seq.Lengths(recs)
	vlog.Printf("Imported %d fasta sequences from %s", len(recs), slurp.Describe(flags.InFile))

	st, err := seqstats.Calc(recs, flags.Strict)
	if err != nil {
		return err
	}
	vlog.Print("Length distribution\n", seqstats.LengthSummary(lens, 10))
	printStats(w, st)

	vals := make([]float64, len(lens))
	for i, l := range lens {
		vals[i] = float64(l)
	}
	img, err := histo.Draw1D(histo.Bins(vals, flags.NBin), histo.Opts{
		Title:  flags.Title,
		XLabel: "Fasta sequence length",
		YLabel: "Occurences",
	})
	if err != nil {
		return err
	}
	outfile := flags.OutFile
	if abs, err := filepath.Abs(outfile); err == nil {
		outfile = abs
	}
	fmt.Fprintln(w, "Saving histogram to", outfile)
	return histo.SaveWarn(os.Stderr, outfile, img)
}

// Main parses args and runs.
func Main(args []string, w io.Writer) error {
	var flags CmdFlag
	fs := common.NewFlagSet("fastastats", os.Stderr)
	SetFlags(fs, &flags)
	pos, err := common.ParseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if err := common.NArgs(pos, 0, 0, Usage); err != nil {
		return err
	}
	return Mymain(&flags, w)
}
