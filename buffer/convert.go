package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/quire/internal/grapheme"
)

// RuneOffset returns the rune index at which the cluster at grapheme column
// col starts. col is clamped to [0, Len()]; Len() maps to the rune count.
func (r *Row) RuneOffset(col int) int {
	off := 0
	for i, g := range grapheme.Split(r.text) {
		if i >= col {
			break
		}
		off += utf8.RuneCountInString(g)
	}
	return off
}

// Width returns the number of terminal cells the clusters in [0, col) occupy
// once rendered, counting a tab as TabWidth cells.
func (r *Row) Width(col int) int {
	w := 0
	for i, g := range grapheme.Split(r.text) {
		if i >= col {
			break
		}
		w += cellWidth(g)
	}
	return w
}

// Span returns the grapheme columns [start, end) of the clusters that lie
// entirely within the cells [from, from+width). pad is the number of blank
// cells before start left by a cluster cut at from.
func (r *Row) Span(from, width int) (start, end, pad int) {
	clusters := grapheme.Split(r.text)
	limit := from + width
	start = -1
	x := 0
	for i, g := range clusters {
		cw := cellWidth(g)
		if x >= from {
			if start < 0 {
				start, pad = i, x-from
			}
			if x+cw > limit {
				return start, i, min(pad, max(width, 0))
			}
		}
		x += cw
	}
	if start < 0 {
		return len(clusters), len(clusters), 0
	}
	return start, len(clusters), min(pad, max(width, 0))
}

func cellWidth(cluster string) int {
	if cluster == "\t" {
		return TabWidth
	}
	return grapheme.Width(cluster)
}

// runeOffsets returns the rune index of every cluster boundary in clusters;
// the result has len(clusters)+1 entries.
func runeOffsets(clusters []string) []int {
	out := make([]int, len(clusters)+1)
	for i, g := range clusters {
		out[i+1] = out[i] + utf8.RuneCountInString(g)
	}
	return out
}
