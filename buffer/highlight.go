package buffer

import (
	"github.com/iw2rmb/quire/highlight"
	"github.com/iw2rmb/quire/internal/grapheme"
)

// Highlight recomputes the row's highlight categories under opts. Every
// non-overlapping occurrence of word is then marked highlight.Match,
// overriding the lexical category. An empty word marks nothing.
func (r *Row) Highlight(opts highlight.Options, word string) {
	r.highlights = highlight.Line(r.text, opts)
	if word == "" {
		return
	}

	clusters := grapheme.Split(r.text)
	needle := grapheme.Split(word)
	offsets := runeOffsets(clusters)
	for at := 0; at < len(clusters); {
		col, ok := findClusters(clusters, needle, at, Forward)
		if !ok {
			break
		}
		end := col + len(needle)
		for i := offsets[col]; i < offsets[end]; i++ {
			r.highlights[i] = highlight.Match
		}
		at = end
	}
}

// Highlight re-highlights every row, marking occurrences of word. Pass ""
// to clear search marks.
func (d *Document) Highlight(word string) {
	opts := d.fileType.HighlightingOptions()
	for _, row := range d.rows {
		row.Highlight(opts, word)
	}
}

func (d *Document) highlightRow(row *Row) {
	row.Highlight(d.fileType.HighlightingOptions(), "")
}
