package editor

// textHeight is the number of rows available for document text.
func (m *Model) textHeight() int {
	return max(m.height-2, 0)
}

// cursorCells returns the screen column of the cursor within its row and the
// number of cells the cursor cluster occupies.
func (m *Model) cursorCells() (x, width int) {
	row := m.doc.Row(m.cursor.Y)
	if row == nil {
		return 0, 1
	}
	x = row.Width(m.cursor.X)
	if m.cursor.X >= row.Len() {
		return x, 1
	}
	return x, row.Width(m.cursor.X+1) - x
}

// scroll moves the offset so the cursor cell stays inside the text area.
func (m *Model) scroll() {
	h, w := m.textHeight(), m.width
	if h == 0 || w == 0 {
		return
	}
	if m.cursor.Y < m.offset.Y {
		m.offset.Y = m.cursor.Y
	} else if m.cursor.Y >= m.offset.Y+h {
		m.offset.Y = m.cursor.Y - h + 1
	}

	x, cw := m.cursorCells()
	if x < m.offset.X {
		m.offset.X = x
	} else if x+cw > m.offset.X+w {
		m.offset.X = x + cw - w
	}
}
