package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quire"
	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/internal/grapheme"
)

const maxNameWidth = 20

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	h := m.textHeight()
	lines := make([]string, 0, h+2)
	for i := 0; i < h; i++ {
		lines = append(lines, m.renderLine(m.offset.Y+i, i))
	}
	lines = append(lines, m.renderStatusBar())
	lines = append(lines, m.renderMessageBar())
	return strings.Join(lines, "\n")
}

func (m Model) renderLine(y, screenRow int) string {
	row := m.doc.Row(y)
	if row == nil {
		if y == m.cursor.Y {
			return m.cfg.Style.Cursor.Render(" ")
		}
		if m.doc.IsEmpty() && screenRow == m.textHeight()/3 {
			return m.renderWelcome()
		}
		return m.cfg.Style.Filler.Render("~")
	}

	start, end, pad := row.Span(m.offset.X, m.width)
	prefix := strings.Repeat(" ", pad)
	if y != m.cursor.Y {
		return prefix + row.Render(row.RuneOffset(start), row.RuneOffset(end))
	}
	return prefix + m.renderCursorLine(row, start, end)
}

// renderCursorLine draws the grapheme columns [start, end) of the cursor row
// with the cursor cluster styled separately.
func (m Model) renderCursorLine(row *buffer.Row, start, end int) string {
	x := m.cursor.X
	var sb strings.Builder
	sb.WriteString(row.Render(row.RuneOffset(start), row.RuneOffset(x)))

	cell := " "
	if x < row.Len() {
		cell = grapheme.Slice(row.String(), x, x+1)
		if cell == "\t" {
			cell = strings.Repeat(" ", buffer.TabWidth)
		}
	}
	sb.WriteString(m.cfg.Style.Cursor.Render(cell))

	if x+1 < end {
		sb.WriteString(row.Render(row.RuneOffset(x+1), row.RuneOffset(end)))
	}
	return sb.String()
}

func (m Model) renderWelcome() string {
	welcome := quire.Banner()
	w := lipgloss.Width(welcome)
	if w > m.width {
		return m.cfg.Style.Welcome.Render(truncate(welcome, m.width))
	}
	padding := (m.width - w) / 2
	line := "~" + strings.Repeat(" ", max(padding-1, 0))
	return m.cfg.Style.Filler.Render(line) + m.cfg.Style.Welcome.Render(welcome)
}

func (m Model) renderStatusBar() string {
	name := m.doc.FileName()
	if name == "" {
		name = "[No Name]"
	}
	name = truncate(name, maxNameWidth)

	modified := ""
	if m.doc.IsDirty() {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, m.doc.Len(), modified)
	right := fmt.Sprintf("%s | %d/%d", m.doc.FileType().Name, m.cursor.Y+1, m.doc.Len())

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", max(gap, 0)) + right
	return m.cfg.Style.StatusBar.Render(truncate(line, m.width))
}

func (m Model) renderMessageBar() string {
	text := m.Message()
	if p, ok := m.Prompt(); ok {
		text = p
	}
	return m.cfg.Style.Message.Render(truncate(text, m.width))
}

// truncate cuts s to at most width terminal cells on a cluster boundary.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	var sb strings.Builder
	w := 0
	for _, g := range grapheme.Split(s) {
		gw := grapheme.Width(g)
		if w+gw > width {
			break
		}
		sb.WriteString(g)
		w += gw
	}
	return sb.String()
}
