package buffer

import "github.com/iw2rmb/quire/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
	// Count repeats vertical line moves, e.g. a page height. 0 means 1.
	Count int
}

// Move returns the position reached from p by m. p is clamped first and the
// result always satisfies the document's position invariants; row Len() is
// reachable as the append position.
func (d *Document) Move(p Position, m Move) Position {
	p = d.clampPosition(p)
	switch m.Unit {
	case MoveGrapheme:
		p = d.moveGrapheme(p, m.Dir)
	case MoveWord:
		p = d.moveWord(p, m.Dir)
	case MoveLine:
		p = d.moveLine(p, m.Dir, max(m.Count, 1))
	case MoveDoc:
		p = d.moveDoc(p, m.Dir)
	}
	return d.clampPosition(p)
}

func (d *Document) rowLen(y int) int {
	if y < 0 || y >= len(d.rows) {
		return 0
	}
	return d.rows[y].Len()
}

func (d *Document) clampPosition(p Position) Position {
	y := clampInt(p.Y, 0, len(d.rows))
	return Position{X: clampInt(p.X, 0, d.rowLen(y)), Y: y}
}

func (d *Document) moveGrapheme(p Position, dir MoveDir) Position {
	switch dir {
	case DirLeft:
		if p.X > 0 {
			return Position{X: p.X - 1, Y: p.Y}
		}
		if p.Y > 0 {
			return Position{X: d.rowLen(p.Y - 1), Y: p.Y - 1}
		}
		return p
	case DirRight:
		if p.X < d.rowLen(p.Y) {
			return Position{X: p.X + 1, Y: p.Y}
		}
		if p.Y < len(d.rows) {
			return Position{X: 0, Y: p.Y + 1}
		}
		return p
	default:
		return d.moveLine(p, dir, 1)
	}
}

func (d *Document) moveLine(p Position, dir MoveDir, n int) Position {
	switch dir {
	case DirHome:
		return Position{X: 0, Y: p.Y}
	case DirEnd:
		return Position{X: d.rowLen(p.Y), Y: p.Y}
	case DirUp:
		y := max(p.Y-n, 0)
		return Position{X: min(p.X, d.rowLen(y)), Y: y}
	case DirDown:
		y := min(p.Y+n, len(d.rows))
		return Position{X: min(p.X, d.rowLen(y)), Y: y}
	default:
		return p
	}
}

func (d *Document) moveWord(p Position, dir MoveDir) Position {
	if p.Y >= len(d.rows) {
		return p
	}
	line := grapheme.Split(d.rows[p.Y].text)

	switch dir {
	case DirLeft:
		return Position{X: prevWordBoundary(line, p.X), Y: p.Y}
	case DirRight:
		return Position{X: nextWordBoundary(line, p.X), Y: p.Y}
	default:
		return d.moveLine(p, dir, 1)
	}
}

func (d *Document) moveDoc(p Position, dir MoveDir) Position {
	switch dir {
	case DirHome, DirUp:
		return Position{}
	case DirEnd, DirDown:
		last := max(len(d.rows)-1, 0)
		return Position{X: d.rowLen(last), Y: last}
	default:
		return p
	}
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - the row end is a hard boundary
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
