package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/softwrap/softwrap/pkg/utils"
)

// View implements tea.Model.
func (m *EditorModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.statusBar()
}

// SetStatus replaces the transient status text. It stays visible until the
// next keypress.
func (m *EditorModel) SetStatus(text string) {
	m.statusText = text
}

// syncViewport re-renders the document into the viewport and keeps the
// cursor row visible.
func (m *EditorModel) syncViewport() {
	content, cursorRow := m.renderContent()
	m.viewport.SetContent(content)

	if cursorRow < m.viewport.YOffset {
		m.viewport.SetYOffset(cursorRow)
	} else if cursorRow >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(cursorRow - m.viewport.Height + 1)
	}
}

// renderContent renders the document with the cursor cell highlighted and
// returns the cursor's display row.
func (m *EditorModel) renderContent() (string, int) {
	cursor := m.doc.Cursor()
	cursorRow := strings.Count(m.doc.Slice(0, cursor), "\n")
	cursorCol := cursor - m.doc.LineStart(cursor)

	lines := strings.Split(m.doc.String(), "\n")
	var b strings.Builder
	for row, line := range lines {
		if row > 0 {
			b.WriteByte('\n')
		}
		if row == cursorRow {
			b.WriteString(m.renderCursorLine(line, cursorCol))
			continue
		}
		if m.width > 0 {
			line = truncate.String(line, uint(m.width))
		}
		b.WriteString(line)
	}
	return b.String(), cursorRow
}

// renderCursorLine renders the line the cursor sits on, shifting it left
// when the cursor is past the window width (only possible with wrap off).
func (m *EditorModel) renderCursorLine(line string, col int) string {
	runes := []rune(line)
	if m.width > 0 && col >= m.width {
		shift := col - m.width + 1
		runes = runes[shift:]
		col -= shift
	}

	before := string(runes[:col])
	at := " "
	after := ""
	if col < len(runes) {
		at = string(runes[col])
		after = string(runes[col+1:])
	}
	return before + CursorStyle.Render(at) + after
}

func (m *EditorModel) statusBar() string {
	if m.savePrompting {
		return StatusBarStyle.Width(m.width).Render("Save as: " + m.saveInput.View())
	}

	name := m.path
	if name == "" {
		name = "[scratch]"
	}
	if m.doc.Modified() {
		name = ModifiedStyle.Render(name + " *")
	}

	mode := ModeOffStyle.Render("wrap off")
	if m.ctrl.Active() {
		mode = ModeOnStyle.Render(fmt.Sprintf("wrap %d", m.ctrl.Width()))
	}

	middle := m.statusText
	if middle == "" {
		middle = HelpStyle.Render("ctrl+w wrap · alt+q unfill ¶ · ctrl+s save · ctrl+q quit")
	} else {
		middle = NoticeStyle.Render(middle)
	}

	cursor := m.doc.Cursor()
	row := strings.Count(m.doc.Slice(0, cursor), "\n") + 1
	col := cursor - m.doc.LineStart(cursor) + 1
	right := fmt.Sprintf("%s · Ln %d, Col %d",
		utils.FormatWordCount(utils.CountWords(m.doc.String())), row, col)

	left := name + "  " + mode
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right) - 4
	if gap < 2 {
		// Narrow window: drop the middle segment first.
		middle = ""
		gap = m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
		if gap < 1 {
			gap = 1
		}
		return StatusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
	}

	half := gap / 2
	bar := left + strings.Repeat(" ", half) + middle + strings.Repeat(" ", gap-half) + right
	return StatusBarStyle.Width(m.width).Render(bar)
}
