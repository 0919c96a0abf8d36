package common

import (
	"flag"
	"io"
	"strings"
)

// NewFlagSet makes a flag set which returns errors instead of exiting,
// so the dispatcher can call a tool and carry on. Usage goes to w.
func NewFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}

// ParseInterspersed parses args, but unlike fs.Parse it does not stop at
// the first positional argument. Positionals are collected and returned
// in order, so "out.png -i in.txt" and "-i in.txt out.png" are the same.
// Anything after "--" is positional.
func ParseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for {
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return nil, err
			}
			return nil, Wrap(KindUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return pos, nil
		}
		if terminated(fs, args[:len(args)-len(rest)]) {
			return append(pos, rest...), nil
		}
		pos = append(pos, rest[0])
		args = rest[1:]
	}
}

// terminated says if fs.Parse, having used up the arguments in used,
// stopped because of a "--". A "--" can also be the value of a flag,
// so walk through used the way fs.Parse did.
func terminated(fs *flag.FlagSet, used []string) bool {
	for i := 0; i < len(used); i++ {
		a := used[i]
		if a == "--" {
			return true
		}
		name := strings.TrimPrefix(strings.TrimPrefix(a, "-"), "-")
		if name == a || strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			continue
		}
		i++ // its value
	}
	return false
}

// NArgs complains if the number of positional arguments is not in [lo, hi].
func NArgs(pos []string, lo, hi int, usage string) error {
	if len(pos) < lo || len(pos) > hi {
		return Errorf(KindUsage, "got %d arguments. usage: %s", len(pos), usage)
	}
	return nil
}
