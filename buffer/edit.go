package buffer

import "slices"

// Insert types ch at at. A '\n' splits the row at at.X, moving the rest of
// the row onto a new row below. At.Y == Len() appends a new row. Positions
// past the document or past the end of a row are ignored.
func (d *Document) Insert(at Position, ch rune) {
	if at.Y < 0 || at.Y > len(d.rows) || at.X < 0 {
		return
	}
	if at.Y < len(d.rows) && at.X > d.rows[at.Y].Len() {
		return
	}

	d.changed = true
	if ch == '\n' {
		d.insertNewline(at)
		return
	}
	if at.Y == len(d.rows) {
		row := NewRow(string(ch))
		d.highlightRow(row)
		d.rows = append(d.rows, row)
		return
	}
	row := d.rows[at.Y]
	row.Insert(at.X, ch)
	d.highlightRow(row)
}

func (d *Document) insertNewline(at Position) {
	if at.Y == len(d.rows) {
		row := NewRow("")
		d.highlightRow(row)
		d.rows = append(d.rows, row)
		return
	}
	current := d.rows[at.Y]
	next := current.Split(at.X)
	d.highlightRow(current)
	d.highlightRow(next)
	d.rows = slices.Insert(d.rows, at.Y+1, next)
}

// Delete removes the cluster at at. At the end of a row that has a
// successor, the next row is joined onto it instead.
func (d *Document) Delete(at Position) {
	if at.Y < 0 || at.Y >= len(d.rows) {
		return
	}

	d.changed = true
	row := d.rows[at.Y]
	if at.X == row.Len() && at.Y+1 < len(d.rows) {
		next := d.rows[at.Y+1]
		d.rows = slices.Delete(d.rows, at.Y+1, at.Y+2)
		row.Append(next)
	} else {
		row.Delete(at.X)
	}
	d.highlightRow(row)
}
