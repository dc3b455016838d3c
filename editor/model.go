package editor

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire/buffer"
)

type statusMessage struct {
	text string
	at   time.Time
}

// Model is a Bubble Tea component that renders and edits a document.
type Model struct {
	cfg Config
	doc *buffer.Document

	cursor buffer.Position
	// offset is the first visible row (Y) and screen cell (X).
	offset buffer.Position

	width, height int

	message statusMessage

	prompt *prompt
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg: cfg,
		doc: cfg.Document,
	}
	msg := cfg.Message
	if msg == "" {
		msg = cfg.KeyMap.HelpText()
	}
	m.setMessage(msg)
	return m
}

func (m Model) Document() *buffer.Document { return m.doc }

func (m Model) Cursor() buffer.Position { return m.cursor }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the terminal size. Two rows are reserved for the status and
// message bars.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.scroll()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if m.prompt != nil {
			return m.updatePrompt(msg)
		}
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) setMessage(text string) {
	m.message = statusMessage{text: text, at: m.cfg.Now()}
}

func (m *Model) setMessagef(format string, args ...any) {
	m.setMessage(fmt.Sprintf(format, args...))
}

// Message returns the current message bar text, or "" once it expired.
func (m Model) Message() string {
	if m.cfg.Now().Sub(m.message.at) >= m.cfg.MessageTTL {
		return ""
	}
	return m.message.text
}
