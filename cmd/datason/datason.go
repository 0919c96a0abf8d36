// 19 Oct 2026
// datason runs one of the tools, given its name and then its arguments.
//
//	datason [-v] enum_headers|fastastats|inthisto|inthisto2d [--] args...
//
// The tools run in this process. A -v before the tool name says what
// is about to run.

package main

import (
	"io"
	"log"
	"os"

	"github.com/cespare/subcmd"

	"github.com/andrew-torda/datason/pkg/common"
	"github.com/andrew-torda/datason/pkg/enumheaders"
	"github.com/andrew-torda/datason/pkg/fastastats"
	"github.com/andrew-torda/datason/pkg/inthisto"
	"github.com/andrew-torda/datason/pkg/inthisto2d"
)

// tool is what every tool package offers.
type tool func(args []string, w io.Writer) error

type entry struct {
	name string
	desc string
	run  tool
}

var tools = []entry{
	{"enum_headers", "Number the column headers in the first line of a file", enumheaders.Main},
	{"fastastats", "GC content, length statistics and length histogram of a fasta file", fastastats.Main},
	{"inthisto", "Histogram of integers, one per line", inthisto.Main},
	{"inthisto2d", "2D histogram of pairs of integers", inthisto2d.Main},
}

var vlog = common.Vlog(false)

// forward drops a "--" that separates our arguments from the tool's.
func forward(args []string) []string {
	if len(args) > 0 && args[0] == "--" {
		return args[1:]
	}
	return args
}

// run calls a tool and returns the exit status.
func run(e entry, args []string, w io.Writer) int {
	args = forward(args)
	vlog.Println("Command:", e.name)
	vlog.Printf("Rest of arguments: %q", args)
	return common.Finish(e.name, e.run(args, w))
}

func commands() []subcmd.Command {
	cmds := make([]subcmd.Command, len(tools))
	for i, e := range tools {
		cmds[i] = subcmd.Command{
			Name:        e.name,
			Description: e.desc,
			Do:          func(args []string) { os.Exit(run(e, args, os.Stdout)) },
		}
	}
	return cmds
}

// verboseFlag takes a -v or --verbose from in front of the tool name.
func verboseFlag(args []string) ([]string, bool) {
	if len(args) > 1 && (args[1] == "-v" || args[1] == "--verbose") {
		return append(args[:1:1], args[2:]...), true
	}
	return args, false
}

func main() {
	log.SetFlags(0)
	var verbose bool
	os.Args, verbose = verboseFlag(os.Args)
	vlog = common.Vlog(verbose)
	vlog.Println("Verbose status:", verbose)
	subcmd.Run(commands())
}
