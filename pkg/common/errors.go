package common

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Kind says what sort of thing went wrong, so callers can decide
// what to do without looking at the text of a message.
type Kind byte

const (
	KindUnknown Kind = iota
	KindIO           // could not read or write a file
	KindUsage        // bad command line
	KindFormat       // input does not look the way it should
	KindShape        // lists or lines of the wrong length
	KindEmpty        // nothing to calculate with
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindIO:      "io",
	KindUsage:   "usage",
	KindFormat:  "format",
	KindShape:   "shape",
	KindEmpty:   "empty input",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Error carries a Kind along with the underlying error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Errorf makes an error of the given kind. It takes the same
// arguments as fmt.Errorf, so %w works.
func Errorf(k Kind, format string, a ...interface{}) error {
	return &Error{Kind: k, Err: fmt.Errorf(format, a...)}
}

// Wrap attaches a kind to an existing error. A nil error stays nil.
func Wrap(k Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: k, Err: err}
}

// KindOf digs through wrapped errors for the first Kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch KindOf(err) {
	case KindUsage:
		return ExitUsageError
	case KindFormat:
		return ExitFormatError
	case KindShape:
		return ExitShapeError
	case KindEmpty:
		return ExitEmptyError
	}
	return ExitFailure
}

var errPrefix = color.New(color.FgRed, color.Bold)

// Report prints an error once, with a coloured prefix when w is a terminal.
func Report(w io.Writer, prog string, err error) {
	if err == nil {
		return
	}
	if w == os.Stderr {
		errPrefix.Fprint(w, prog, ": error: ")
	} else {
		fmt.Fprint(w, prog, ": error: ")
	}
	fmt.Fprintln(w, err)
}

// Finish is called at the end of a main. It reports err, if there is one,
// and returns the exit status. Asking for help is not a failure.
func Finish(prog string, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	Report(os.Stderr, prog, err)
	return ExitCode(err)
}
