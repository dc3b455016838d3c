package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if key.Matches(msg, km.Quit) {
		if m.doc.IsDirty() {
			m.startQuit()
			return m, nil
		}
		return m, tea.Quit
	}

	changed := false
	switch {
	case msg.Type == tea.KeyRunes && !msg.Alt:
		for _, r := range msg.Runes {
			m.insert(r)
		}
		changed = len(msg.Runes) > 0
	case msg.Type == tea.KeySpace:
		m.insert(' ')
		changed = true
	case msg.Type == tea.KeyTab:
		m.insert('\t')
		changed = true

	case key.Matches(msg, km.Save):
		m.save()
	case key.Matches(msg, km.Find):
		m.startSearch()

	case key.Matches(msg, km.Enter):
		m.insert('\n')
		changed = true
	case key.Matches(msg, km.Backspace):
		if m.cursor.X > 0 || m.cursor.Y > 0 {
			m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
			m.doc.Delete(m.cursor)
			changed = true
		}
	case key.Matches(msg, km.Delete):
		m.doc.Delete(m.cursor)
		changed = true

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Count: m.textHeight()})
	case key.Matches(msg, km.PageDown):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Count: m.textHeight()})
	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	}

	m.scroll()
	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(&m))
	}
	return m, nil
}

func (m *Model) move(mv buffer.Move) {
	m.cursor = m.doc.Move(m.cursor, mv)
}

// insert types r at the cursor and steps past it. A rune that joins the
// preceding cluster (e.g. a combining mark) leaves the cursor in place.
func (m *Model) insert(r rune) {
	before := m.rowLen(m.cursor.Y)
	appending := m.cursor.Y >= m.doc.Len()
	m.doc.Insert(m.cursor, r)
	if r == '\n' || appending || m.rowLen(m.cursor.Y) > before {
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	}
}

func (m *Model) rowLen(y int) int {
	if row := m.doc.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

func (m *Model) save() {
	if m.doc.FileName() == "" {
		m.startSaveAs(false)
		return
	}
	m.writeDocument()
}

// writeDocument saves the document and reports the outcome in the message
// bar.
func (m *Model) writeDocument() bool {
	if err := m.doc.Save(); err != nil {
		m.cfg.Logger.Error("save failed", "path", m.doc.FileName(), "error", err)
		m.setMessagef("Error writing file: %v", err)
		return false
	}
	m.cfg.Logger.Info("saved", "path", m.doc.FileName(), "rows", m.doc.Len())
	m.setMessage("File saved successfully.")
	return true
}
