package buffer

import "github.com/iw2rmb/quire/internal/grapheme"

// Find looks for query as a run of whole grapheme clusters. Forward searches
// [at, Len()) and returns the first match; Backward searches [0, at) and
// returns the last. The result is the grapheme column of the match start.
func (r *Row) Find(query string, at int, dir SearchDirection) (int, bool) {
	if query == "" || at < 0 || at > r.count {
		return 0, false
	}
	return findClusters(grapheme.Split(r.text), grapheme.Split(query), at, dir)
}

func findClusters(clusters, needle []string, at int, dir SearchDirection) (int, bool) {
	if at > len(clusters) {
		return 0, false
	}
	if dir == Backward {
		if i := grapheme.LastIndex(clusters[:at], needle); i >= 0 {
			return i, true
		}
		return 0, false
	}
	if i := grapheme.Index(clusters[at:], needle); i >= 0 {
		return at + i, true
	}
	return 0, false
}

// Find returns the position of the next match of query.
//
// Forward scans from at.Y to the last row, starting at at.X on the first row
// and at column 0 on the rest. Backward scans rows 0 through at.Y from the
// top, taking each row's last match before its end and, on row at.Y, before
// at.X; the first row with a hit wins.
func (d *Document) Find(query string, at Position, dir SearchDirection) (Position, bool) {
	if query == "" || at.Y < 0 || at.Y >= len(d.rows) {
		return Position{}, false
	}

	if dir == Backward {
		for y := 0; y <= at.Y; y++ {
			row := d.rows[y]
			x := row.Len()
			if y == at.Y {
				x = at.X
			}
			if col, ok := row.Find(query, x, Backward); ok {
				return Position{X: col, Y: y}, true
			}
		}
		return Position{}, false
	}

	x := at.X
	for y := at.Y; y < len(d.rows); y++ {
		if col, ok := d.rows[y].Find(query, x, Forward); ok {
			return Position{X: col, Y: y}, true
		}
		x = 0
	}
	return Position{}, false
}
