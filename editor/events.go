package editor

import "github.com/iw2rmb/quire/buffer"

// ChangeEvent describes the document after a mutating keypress.
type ChangeEvent struct {
	Cursor buffer.Position
	Rows   int
	Dirty  bool
}

func buildChangeEvent(m *Model) ChangeEvent {
	return ChangeEvent{
		Cursor: m.cursor,
		Rows:   m.doc.Len(),
		Dirty:  m.doc.IsDirty(),
	}
}
