package buffer

import (
	"strings"

	"github.com/iw2rmb/quire/highlight"
	"github.com/iw2rmb/quire/internal/grapheme"
)

// Row is one line of a document, without its line terminator.
type Row struct {
	text  string
	count int

	// highlights holds one entry per rune of text. It is only consistent
	// with text after Highlight has run.
	highlights []highlight.Type
}

// NewRow returns an unhighlighted row holding text.
func NewRow(text string) *Row {
	return &Row{text: text, count: grapheme.Count(text)}
}

func (r *Row) String() string { return r.text }

// Len returns the number of grapheme clusters in the row.
func (r *Row) Len() int { return r.count }

func (r *Row) IsEmpty() bool { return r.count == 0 }

// Highlights returns the per-rune highlight categories from the last
// Highlight call.
func (r *Row) Highlights() []highlight.Type { return r.highlights }

// Insert places ch before the cluster at grapheme column at, or appends it
// when at is at or past the end of the row.
func (r *Row) Insert(at int, ch rune) {
	if at >= r.count {
		r.text += string(ch)
	} else {
		var sb strings.Builder
		sb.Grow(len(r.text) + 4)
		for i, g := range grapheme.Split(r.text) {
			if i == at {
				sb.WriteRune(ch)
			}
			sb.WriteString(g)
		}
		r.text = sb.String()
	}
	r.count = grapheme.Count(r.text)
}

// Delete removes the cluster at grapheme column at. Out of range columns are
// ignored.
func (r *Row) Delete(at int) {
	if at < 0 || at >= r.count {
		return
	}
	var sb strings.Builder
	sb.Grow(len(r.text))
	for i, g := range grapheme.Split(r.text) {
		if i != at {
			sb.WriteString(g)
		}
	}
	r.text = sb.String()
	r.count = grapheme.Count(r.text)
}

// Split truncates the row at grapheme column at and returns the remainder as
// a new, unhighlighted row.
func (r *Row) Split(at int) *Row {
	clusters := grapheme.Split(r.text)
	at = clampInt(at, 0, len(clusters))

	right := NewRow(grapheme.Join(clusters[at:]))
	r.text = grapheme.Join(clusters[:at])
	r.count = grapheme.Count(r.text)
	return right
}

// Append concatenates other's text onto the end of the row.
func (r *Row) Append(other *Row) {
	if other == nil {
		return
	}
	r.text += other.text
	r.count = grapheme.Count(r.text)
}
