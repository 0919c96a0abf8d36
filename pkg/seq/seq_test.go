package seq_test

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/datason/pkg/common"
	. "github.com/andrew-torda/datason/pkg/seq"
)

func recsHelp(t *testing.T, src string, want []Record) {
	t.Helper()
	got, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsing %q (-want +got):\n%s", src, diff)
	}
}

// TestComment is to check that comments are read exactly, with white space gone
func TestComment(t *testing.T) {
	s := ">testcomment no space\naaa\n> testcomment with space at start\naaa\n"
	recsHelp(t, s, []Record{
		{Cmmt: "testcommentnospace", Seq: "aaa"},
		{Cmmt: "testcommentwithspaceatstart", Seq: "aaa"},
	})
}

func TestSimple(t *testing.T) {
	recsHelp(t, ">h1\nACGT\n>h2\nGGCC\n", []Record{
		{Cmmt: "h1", Seq: "ACGT"},
		{Cmmt: "h2", Seq: "GGCC"},
	})
}

// TestDiffLen has sequences of different lengths spread over lines
func TestDiffLen(t *testing.T) {
	s := `>s1
a
> s2
a a
> s3
aa
a-a
`
	recsHelp(t, s, []Record{{"s1", "a"}, {"s2", "aa"}, {"s3", "aaa-a"}})
}

// TestJunkAtStart checks that chat before the first ">" is ignored
func TestJunkAtStart(t *testing.T) {
	s := "# made by some program\n; comment\n>s1\nACGT"
	recsHelp(t, s, []Record{{"s1", "ACGT"}})
}

func TestLeadingEmpty(t *testing.T) {
	recsHelp(t, ">\n\n>>s1\nAC\n", []Record{{"s1", "AC"}})
	recsHelp(t, ">", nil)
	// Only leading empty records are dropped
	recsHelp(t, ">s1\nAC\n>\n>s3\nG", []Record{{"s1", "AC"}, {"", ""}, {"s3", "G"}})
}

func TestNoSeq(t *testing.T) {
	recsHelp(t, ">only a comment", []Record{{"onlyacomment", ""}})
	recsHelp(t, "> a>b\nACGT", []Record{{"a", ""}, {"b", "ACGT"}})
	recsHelp(t, "\r\n>s1\r\nAC\r\nGT\r\n", []Record{{"s1", "ACGT"}})
}

func TestNotFasta(t *testing.T) {
	for _, s := range []string{"", "ACGT\nACGT\n", "1,2,3"} {
		recs, err := Parse([]byte(s))
		if err == nil {
			t.Fatalf("%q should not parse, got %v", s, recs)
		}
		if k := common.KindOf(err); k != common.KindFormat {
			t.Fatalf("%q gave kind %v, want format", s, k)
		}
	}
}

// TestInputUntouched makes sure whitespace removal does not scribble on
// the caller's buffer.
func TestInputUntouched(t *testing.T) {
	const s = "> s 1\nA C\nG T\n"
	src := []byte(s)
	if _, err := Parse(src); err != nil {
		t.Fatal(err)
	}
	if string(src) != s {
		t.Fatalf("input changed to %q", src)
	}
}

// TestIdempotent parses, writes each record and parses again.
func TestIdempotent(t *testing.T) {
	inputs := []string{
		">h1\nACGT\n>h2\nGGCC\n",
		"junk\n> a b c\nAC GT\nNN\n>\nX\n>last",
		">s\n" + strings.Repeat("ACGTN\n", 1000),
	}
	for _, in := range inputs {
		recs, err := Parse([]byte(in))
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range recs {
			again, err := Parse([]byte(r.String()))
			if err != nil {
				t.Fatal(err)
			}
			if len(again) != 1 || again[0] != r {
				t.Fatalf("record %v came back as %v", r, again)
			}
		}
		var sb strings.Builder
		for _, r := range recs {
			sb.WriteString(r.String() + "\n")
		}
		again, err := Parse([]byte(sb.String()))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(recs, again); diff != "" {
			t.Fatalf("joined records changed (-want +got):\n%s", diff)
		}
	}
}

func TestLengths(t *testing.T) {
	recs := []Record{{"a", "A"}, {"b", "ACG"}, {"c", ""}}
	if diff := cmp.Diff([]int{1, 3, 0}, Lengths(recs)); diff != "" {
		t.Fatal(diff)
	}
	if n := TotalLen(recs); n != 4 {
		t.Fatalf("total length %d", n)
	}
}

func TestReadfile(t *testing.T) {
	fname, err := common.WrtTemp(">s1\nAC\n>s2\nG\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	recs, err := Readfile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[1].Seq != "G" {
		t.Fatalf("got %v", recs)
	}

	fname2, err := common.WrtTemp("no marker here\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname2)
	if _, err := Readfile(fname2); common.KindOf(err) != common.KindFormat {
		t.Fatal("wanted format error, got", err)
	}
}
