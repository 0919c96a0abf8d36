// Package zwrap takes a file pointer and optionally wraps it so reads
// come out decompressed. Upon calling Close, the decompressor will be
// closed, followed by the underlying file.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

// gzip streams start with these two bytes
var gzMagic = []byte{0x1f, 0x8b}

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	rdr  io.Reader // buffered view of fp, used when not compressed
	zrdr *gzip.Reader
}

// Compressed says if we are reading through a decompressor.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Close closes the decompressor, then the underlying backing readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	var errs []error
	if e := fc.zrdr.Close(); e != nil { // Close decompressor
		errs = append(errs, e)
	}
	if e := fc.fp.Close(); e != nil { // and backing file
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.rdr.Read(p)
}

// WrapMaybe looks at the first bytes of the stream. If they are the gzip
// magic number, reads are decompressed. Otherwise the data is passed
// through untouched. This works on stdin, since nothing has to seek.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	br := bufio.NewReader(fp)
	fpz := &FpGzip{fp: fp, rdr: br}
	head, err := br.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return fpz, err
	}
	if len(head) < len(gzMagic) || head[0] != gzMagic[0] || head[1] != gzMagic[1] {
		return fpz, nil // Plain data
	}
	if fpz.zrdr, err = gzip.NewReader(br); err != nil {
		return fpz, err
	}
	return fpz, nil
}
