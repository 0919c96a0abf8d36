package inthisto_test

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/datason/pkg/common"
	. "github.com/andrew-torda/datason/pkg/inthisto"
	"github.com/andrew-torda/datason/pkg/intlist"
)

func run(t *testing.T, input string, extra ...string) (string, string, error) {
	t.Helper()
	fname, err := common.WrtTemp(input)
	if err != nil {
		t.Fatal("Fail writing test file")
	}
	t.Cleanup(func() { os.Remove(fname) })
	out := filepath.Join(t.TempDir(), "histo.png")
	var buf bytes.Buffer
	err = Main(append([]string{out, "-i", fname}, extra...), &buf)
	return buf.String(), out, err
}

func TestPlot(t *testing.T) {
	out, img, err := run(t, "\n1\n2\n2\n3\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Plot image saved to") {
		t.Fatal("no message:", out)
	}
	fp, err := os.Open(img)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	if _, format, err := image.DecodeConfig(fp); err != nil || format != "png" {
		t.Fatal("not a png", format, err)
	}
}

func TestVerbose(t *testing.T) {
	out, _, err := run(t, "length\n1\n2\n2\n3\n", "--header", "-v", "-t", "lengths")
	if err != nil {
		t.Fatal(err)
	}
	want := "0\t0.0000\n1\t0.2500\n2\t0.5000\n3\t0.2500\n4\t0.0000\n"
	if !strings.Contains(out, want) {
		t.Fatalf("proportions missing, got:\n%s", out)
	}
}

func TestNotInteger(t *testing.T) {
	_, img, err := run(t, "1\n2\nthree\n")
	if common.KindOf(err) != common.KindFormat {
		t.Fatal("wanted format error, got", err)
	}
	if !strings.Contains(err.Error(), "three") {
		t.Fatal("message should name the bad line:", err)
	}
	if _, err := os.Stat(img); !os.IsNotExist(err) {
		t.Fatal("image should not have been written")
	}
	// Without --header, a header line is just bad data
	if _, _, err := run(t, "length\n1\n"); common.KindOf(err) != common.KindFormat {
		t.Fatal("header without --header should fail, got", err)
	}
}

func TestEmpty(t *testing.T) {
	if _, _, err := run(t, "\n\n"); common.KindOf(err) != common.KindEmpty {
		t.Fatal("no data should be an empty error, got", err)
	}
	if _, _, err := run(t, "header only\n", "--header"); common.KindOf(err) != common.KindEmpty {
		t.Fatal("header and no data should be an empty error, got", err)
	}
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	if err := Main([]string{"-i", "x"}, &buf); common.KindOf(err) != common.KindUsage {
		t.Fatal("missing outfile should be usage error, got", err)
	}
	if err := Main([]string{"a.png", "b.png"}, &buf); common.KindOf(err) != common.KindUsage {
		t.Fatal("two outfiles should be usage error, got", err)
	}
}

func TestPrintProportions(t *testing.T) {
	var buf bytes.Buffer
	props, err := intlist.Proportions([]int{7})
	if err != nil {
		t.Fatal(err)
	}
	PrintProportions(&buf, props)
	if buf.String() != "6\t0.0000\n7\t1.0000\n8\t0.0000\n" {
		t.Fatalf("got %q", buf.String())
	}
}

// TestRange has values so far apart that counting the bins between them
// would wrap around.
func TestRange(t *testing.T) {
	for _, in := range []string{
		"-9223372036854775808\n9223372036854775807\n",
		"9223372036854775807\n",
		"0\n5000000\n",
	} {
		_, img, err := run(t, in)
		if common.KindOf(err) != common.KindShape {
			t.Fatalf("%q wanted shape error, got %v", in, err)
		}
		if _, err := os.Stat(img); !os.IsNotExist(err) {
			t.Fatal("image should not have been written")
		}
	}
}
