package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire/buffer"
)

type promptKind uint8

const (
	promptSaveAs promptKind = iota
	promptSearch
	promptQuit
)

type prompt struct {
	kind  promptKind
	label string
	input []rune

	// quitAfter ends the program once a save-as prompt wrote the file.
	quitAfter bool

	// Search state: where the search started and which way it last went.
	savedCursor buffer.Position
	savedOffset buffer.Position
	dir         buffer.SearchDirection
}

func (p *prompt) String() string { return p.label + string(p.input) }

func (m *Model) startSaveAs(quitAfter bool) {
	m.prompt = &prompt{kind: promptSaveAs, label: "Save as: ", quitAfter: quitAfter}
}

func (m *Model) startQuit() {
	m.prompt = &prompt{kind: promptQuit, label: "WARNING! File has unsaved changes. Save it? (y/n): "}
}

func (m *Model) startSearch() {
	m.prompt = &prompt{
		kind:        promptSearch,
		label:       "Search (ESC to cancel, Arrows to navigate): ",
		savedCursor: m.cursor,
		savedOffset: m.offset,
	}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	p := m.prompt

	switch {
	case key.Matches(msg, km.Cancel):
		m.prompt = nil
		m.cancelPrompt(p)
		return m, nil
	case key.Matches(msg, km.Accept):
		if len(p.input) == 0 && p.kind == promptSaveAs {
			return m, nil
		}
		m.prompt = nil
		cmd := m.acceptPrompt(p)
		return m, cmd
	case key.Matches(msg, km.Backspace):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case msg.Type == tea.KeyRunes:
		p.input = append(p.input, msg.Runes...)
	case msg.Type == tea.KeySpace:
		p.input = append(p.input, ' ')
	}

	if p.kind == promptSearch {
		m.searchStep(p, msg)
	}
	return m, nil
}

func (m *Model) cancelPrompt(p *prompt) {
	switch p.kind {
	case promptSaveAs:
		m.setMessage("Save aborted.")
	case promptQuit:
		m.setMessage("Quit aborted.")
	case promptSearch:
		m.cursor = p.savedCursor
		m.offset = p.savedOffset
		m.doc.Highlight("")
		m.scroll()
	}
}

func (m *Model) acceptPrompt(p *prompt) tea.Cmd {
	switch p.kind {
	case promptSaveAs:
		m.doc.SetFileName(string(p.input))
		if m.writeDocument() && p.quitAfter {
			return tea.Quit
		}
	case promptQuit:
		return m.answerQuit(p)
	case promptSearch:
		m.doc.Highlight("")
	}
	return nil
}

// answerQuit handles the reply to the unsaved-changes question. Anything
// other than y or n asks again.
func (m *Model) answerQuit(p *prompt) tea.Cmd {
	switch strings.ToLower(strings.TrimSpace(string(p.input))) {
	case "y":
		if m.doc.FileName() == "" {
			m.startSaveAs(true)
			return nil
		}
		if m.writeDocument() {
			return tea.Quit
		}
		return nil
	case "n":
		return tea.Quit
	default:
		p.input = p.input[:0]
		m.prompt = p
		return nil
	}
}

// searchStep runs one incremental search step. Right/Down look for the next
// match after the cursor, Left/Up for the previous one, and typing searches
// forward from the cursor.
func (m *Model) searchStep(p *prompt, msg tea.KeyMsg) {
	km := m.cfg.KeyMap
	query := string(p.input)

	moved := false
	switch {
	case key.Matches(msg, km.Right), key.Matches(msg, km.Down):
		p.dir = buffer.Forward
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
		moved = true
	case key.Matches(msg, km.Left), key.Matches(msg, km.Up):
		p.dir = buffer.Backward
	default:
		p.dir = buffer.Forward
	}

	if pos, ok := m.doc.Find(query, m.cursor, p.dir); ok {
		m.cursor = pos
		m.scroll()
	} else if moved {
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	}
	m.doc.Highlight(query)
}

// Prompt returns the active prompt line, if any.
func (m Model) Prompt() (string, bool) {
	if m.prompt == nil {
		return "", false
	}
	return m.prompt.String(), true
}
