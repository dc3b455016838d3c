package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if c := Count(""); c != 0 {
		t.Fatalf("count of empty=%d, want 0", c)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	if got, want := Slice(text, 1, 3), "e\u0301"+family; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestIndexAndLastIndex(t *testing.T) {
	hay := Split("ab e\u0301 ab e\u0301")
	cases := []struct {
		needle    string
		wantFirst int
		wantLast  int
	}{
		{needle: "ab", wantFirst: 0, wantLast: 5},
		{needle: "e\u0301", wantFirst: 3, wantLast: 8},
		{needle: "e", wantFirst: -1, wantLast: -1},
		{needle: "zz", wantFirst: -1, wantLast: -1},
		{needle: "", wantFirst: -1, wantLast: -1},
	}
	for _, tc := range cases {
		needle := Split(tc.needle)
		if got := Index(hay, needle); got != tc.wantFirst {
			t.Fatalf("Index(%q)=%d, want %d", tc.needle, got, tc.wantFirst)
		}
		if got := LastIndex(hay, needle); got != tc.wantLast {
			t.Fatalf("LastIndex(%q)=%d, want %d", tc.needle, got, tc.wantLast)
		}
	}
}

func TestWidth(t *testing.T) {
	if got := Width("a"); got != 1 {
		t.Fatalf("width(a)=%d, want 1", got)
	}
	if got := Width("世"); got != 2 {
		t.Fatalf("width(cjk)=%d, want 2", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
}
