package editor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quire/buffer"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func openDoc(t *testing.T, name, content string) *buffer.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	d, err := buffer.Open(path, buffer.Options{})
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	return d
}

func newTestModel(doc *buffer.Document, clock *fakeClock) Model {
	m := New(Config{
		Document: doc,
		Style:    Style{}, // keep styles minimal for these tests
		Now:      clock.Now,
	})
	return m.SetSize(40, 10)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, kt tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: kt})
}

func TestNew_DefaultsAndHelpMessage(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := newTestModel(nil, clock)

	if m.Document() == nil || !m.Document().IsEmpty() {
		t.Fatalf("expected an empty document")
	}
	if got, want := m.Message(), DefaultKeyMap().HelpText(); got != want {
		t.Fatalf("message=%q, want %q", got, want)
	}
	if m.cfg.MessageTTL != defaultMessageTTL {
		t.Fatalf("unexpected defaults: %+v", m.cfg)
	}
}

func TestMessage_Expires(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	m := New(Config{Message: "hello", Now: clock.Now})

	if m.Message() != "hello" {
		t.Fatalf("message=%q", m.Message())
	}
	clock.now = clock.now.Add(4 * time.Second)
	if m.Message() != "hello" {
		t.Fatalf("message expired too early")
	}
	clock.now = clock.now.Add(time.Second)
	if m.Message() != "" {
		t.Fatalf("message=%q, want expired", m.Message())
	}
}

func TestMessage_KeepsPercentSigns(t *testing.T) {
	m := New(Config{Message: "100% done, 50%d left", Now: (&fakeClock{}).Now})
	if got := m.Message(); got != "100% done, 50%d left" {
		t.Fatalf("message=%q", got)
	}
	m.setMessagef("Error writing file: %v", "disk full")
	if got := m.Message(); got != "Error writing file: disk full" {
		t.Fatalf("message=%q", got)
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	if m.width != 20 || m.height != 6 || m.textHeight() != 4 {
		t.Fatalf("size=%dx%d text=%d", m.width, m.height, m.textHeight())
	}
}
