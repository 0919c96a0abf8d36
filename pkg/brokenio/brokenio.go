// Package brokenio wraps an io.ReadCloser so reads go wrong on demand.
// Typical use: in a test, wrap a strings.Reader standing in for a pipe
// and check that the reading code reports the failure.
// When we introduce an error, we return an error.
// When we introduce a failure on the first read, we return without an
// error. This is what one often sees on a zero length file.

package brokenio

import (
	"fmt"
	"io"
	"math/rand"
)

// BrknRdrClsr is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// These values are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	probZeroFile float32       // Probability of returning a zero length file
	probFail     float32
	fracFail     float32 // how much of a failed buffer is wiped out
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader, a wrapper around the old one.
// By default nothing fails.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, fracFail: 0.5}
}

// SetFracFail sets the amount of the bytes which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// NByte is the number of bytes that went through.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("randomly wiped out last %d of %d", len(p)-nkeep, len(p))
}

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && rand.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.fracFail > 0 && rand.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error { return r.rdrOrig.Close() }
