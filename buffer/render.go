package buffer

import (
	"strings"

	"github.com/iw2rmb/quire/highlight"
)

// TabWidth is the number of spaces a tab renders as.
const TabWidth = 4

// Render returns the runes in [start, end) as a terminal string. Runs of the
// same highlight category share one color sequence, and the output ends with
// a reset whenever a color sequence was emitted. The range is clamped to the row.
func (r *Row) Render(start, end int) string {
	runes := []rune(r.text)
	end = clampInt(end, 0, len(runes))
	start = clampInt(start, 0, end)

	var sb strings.Builder
	sb.Grow(end - start)
	current := highlight.None
	colored := false
	for i := start; i < end; i++ {
		t := highlight.None
		if i < len(r.highlights) {
			t = r.highlights[i]
		}
		if t != current {
			sb.WriteString(highlight.Sequence(t))
			current = t
			colored = true
		}
		if runes[i] == '\t' {
			sb.WriteString(strings.Repeat(" ", TabWidth))
			continue
		}
		sb.WriteRune(runes[i])
	}
	if colored {
		sb.WriteString(highlight.Reset)
	}
	return sb.String()
}
