package buffer

import (
	"testing"

	"github.com/iw2rmb/quire/filetype"
	"github.com/iw2rmb/quire/highlight"
)

func TestRow_Highlight_SearchWordOverrides(t *testing.T) {
	row := NewRow("let x1 = 11;")
	opts := highlight.Options{Numbers: true, PrimaryKeywords: []string{"let"}}

	row.Highlight(opts, "1")
	hl := row.Highlights()
	if len(hl) != 12 {
		t.Fatalf("len=%d, want 12", len(hl))
	}
	if hl[0] != highlight.PrimaryKeyword {
		t.Fatalf("hl[0]=%v, want keyword", hl[0])
	}
	for _, i := range []int{5, 9, 10} {
		if hl[i] != highlight.Match {
			t.Fatalf("hl[%d]=%v, want match", i, hl[i])
		}
	}

	row.Highlight(opts, "")
	if hl := row.Highlights(); hl[9] != highlight.Number || hl[5] != highlight.None {
		t.Fatalf("clearing the word must restore lexical categories: %v", hl)
	}
}

func TestRow_Highlight_MatchesAreNonOverlapping(t *testing.T) {
	row := NewRow("aaa")
	row.Highlight(highlight.Options{}, "aa")
	hl := row.Highlights()
	if hl[0] != highlight.Match || hl[1] != highlight.Match || hl[2] != highlight.None {
		t.Fatalf("unexpected highlights %v", hl)
	}
}

func TestRow_Highlight_MatchCoversEveryRuneOfCluster(t *testing.T) {
	row := NewRow("a" + combining + "b")
	row.Highlight(highlight.Options{}, combining)
	hl := row.Highlights()
	if len(hl) != 4 {
		t.Fatalf("len=%d, want one entry per rune", len(hl))
	}
	want := []highlight.Type{highlight.None, highlight.Match, highlight.Match, highlight.None}
	for i := range want {
		if hl[i] != want[i] {
			t.Fatalf("hl=%v, want %v", hl, want)
		}
	}
}

func TestDocument_Highlight_NumbersAndComments(t *testing.T) {
	d := New(Options{})
	d.fileType = filetype.FileType{
		Name:       "Test",
		Extensions: []string{".t"},
		Options:    highlight.Options{Numbers: true, Comments: true},
	}
	d.rows = []*Row{NewRow("let x = 42;"), NewRow("// comment")}
	d.Highlight("")

	hl := d.Row(0).Highlights()
	for i, typ := range hl {
		want := highlight.None
		if i == 8 || i == 9 {
			want = highlight.Number
		}
		if typ != want {
			t.Fatalf("row 0 hl[%d]=%v, want %v", i, typ, want)
		}
	}
	for i, typ := range d.Row(1).Highlights() {
		if typ != highlight.Comment {
			t.Fatalf("row 1 hl[%d]=%v, want comment", i, typ)
		}
	}

	d.Highlight("x")
	if got := d.Row(0).Highlights()[4]; got != highlight.Match {
		t.Fatalf("search word not marked: %v", got)
	}
}
