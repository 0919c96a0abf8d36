package histo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/andrew-torda/datason/pkg/common"
)

// encode picks the image format from the file name. Anything we do
// not know gets png.
func encode(w io.Writer, fname string, c *vgimg.Canvas) error {
	var err error
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".bmp":
		err = bmp.Encode(w, c.Image())
	case ".tif", ".tiff":
		_, err = vgimg.TiffCanvas{Canvas: c}.WriteTo(w)
	default:
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	}
	return err
}

// Save writes the picture to fname. If anything goes wrong, no half
// written file is left behind.
func Save(fname string, c *vgimg.Canvas) (err error) {
	fp, err := os.Create(fname)
	if err != nil {
		return common.Wrap(common.KindIO, err)
	}
	defer func() {
		if e := fp.Close(); e != nil && err == nil {
			err = common.Wrap(common.KindIO, e)
		}
		if err != nil {
			os.Remove(fname)
		}
	}()
	if err = encode(fp, fname, c); err != nil {
		return common.Errorf(common.KindIO, "writing image %s: %w", fname, err)
	}
	return nil
}

// Warn if we are about to overwrite something. It does not stop us.
func warnExists(w io.Writer, fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(w, "Warning, trashing old version of", fname)
	}
}

// SaveWarn is Save, but complains to w first if fname is already there.
func SaveWarn(w io.Writer, fname string, c *vgimg.Canvas) error {
	warnExists(w, fname)
	return Save(fname, c)
}
