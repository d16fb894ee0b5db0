package tui

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwrap/softwrap/pkg/document"
	"github.com/softwrap/softwrap/pkg/files"
	"github.com/softwrap/softwrap/pkg/models"
	"github.com/softwrap/softwrap/pkg/wrap"
)

// EditorModel is the prose editor pane: one document, its word-wrap
// controller, and the cursor. All edits go through the document so break
// annotations and cursor stay in sync.
type EditorModel struct {
	doc      *document.Document
	ctrl     *wrap.Controller
	layout   *wrap.ReflowLayout
	settings *models.Settings
	path     string

	width  int
	height int

	viewport viewport.Model

	saveInput     textinput.Model
	savePrompting bool

	pendingNotice string
	statusText    string
	confirmQuit   bool
}

// NewEditorModel loads path (which may not exist yet, or be empty for a
// scratch document) and builds the editor around it.
func NewEditorModel(path string, settings *models.Settings) (*EditorModel, error) {
	var doc *document.Document
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := files.LoadDocument(path)
			if err != nil {
				return nil, err
			}
			doc = loaded
		}
	}
	if doc == nil {
		doc = document.New("")
		doc.SetModified(false)
	}

	opts := wrap.Options{
		ForceHardReturns:         settings.Wrap.ForceHardReturns,
		DoubleSpaceAfterSentence: settings.Wrap.DoubleSpaceAfterSentence,
		DoubleSpaceAfterColon:    settings.Wrap.DoubleSpaceAfterColon,
	}
	layout := wrap.NewReflowLayout(opts)

	m := &EditorModel{
		doc:      doc,
		layout:   layout,
		settings: settings,
		path:     path,
		viewport: viewport.New(80, 24),
	}
	m.ctrl = wrap.NewController(doc, layout, opts, func(msg string) {
		m.pendingNotice = msg
	})

	saveInput := textinput.New()
	saveInput.Placeholder = "file name"
	saveInput.CharLimit = 255
	m.saveInput = saveInput

	return m, nil
}

// Init implements tea.Model.
func (m *EditorModel) Init() tea.Cmd {
	return nil
}

// SetSize resizes the editor pane.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	if height > 1 {
		m.viewport.Height = height - 1 // status bar
	}
	m.syncViewport()
}

// Update implements tea.Model.
func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.savePrompting {
		return m.updateSavePrompt(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() != "ctrl+q" {
		m.confirmQuit = false
	}
	m.statusText = ""

	switch msg.String() {
	case "ctrl+q":
		if m.doc.Modified() && !m.confirmQuit {
			m.confirmQuit = true
			return m, m.statusCmd("Unsaved changes, ctrl+q again to quit")
		}
		return m, tea.Quit

	case "ctrl+w":
		m.ctrl.Toggle(m.wrapViewportWidth())
		m.syncViewport()
		if m.ctrl.Active() {
			return m, m.statusCmd(fmt.Sprintf("Word wrap on (width %d)", m.ctrl.Width()))
		}
		return m, m.statusCmd("Word wrap off")

	case "ctrl+s":
		if m.path == "" {
			m.savePrompting = true
			m.saveInput.SetValue("")
			m.saveInput.Focus()
			return m, textinput.Blink
		}
		return m, m.save()

	case "alt+q":
		m.ctrl.UnfillParagraphAt(m.doc.Cursor())
		m.syncViewport()
		return m, nil

	case "alt+u":
		m.ctrl.UnfillAll()
		m.syncViewport()
		return m, nil

	case "alt+c":
		return m, m.copyLogicalForm()

	case "ctrl+v":
		return m, m.paste()

	case "enter":
		m.doc.Insert(m.doc.Cursor(), "\n")
		m.afterEdit()
		return m, nil

	case "backspace":
		if m.doc.Cursor() > 0 {
			m.doc.Delete(m.doc.Cursor()-1, 1)
			m.afterEdit()
		}
		return m, nil

	case "delete":
		if m.doc.Cursor() < m.doc.Len() {
			m.doc.Delete(m.doc.Cursor(), 1)
			m.afterEdit()
		}
		return m, nil

	case "tab":
		m.doc.Insert(m.doc.Cursor(), "\t")
		m.afterEdit()
		return m, nil

	case "left":
		m.doc.SetCursor(m.doc.Cursor() - 1)
		m.syncViewport()
		return m, nil

	case "right":
		m.doc.SetCursor(m.doc.Cursor() + 1)
		m.syncViewport()
		return m, nil

	case "up":
		m.moveVertical(-1)
		return m, nil

	case "down":
		m.moveVertical(1)
		return m, nil

	case "home":
		m.doc.SetCursor(m.doc.LineStart(m.doc.Cursor()))
		m.syncViewport()
		return m, nil

	case "end":
		m.doc.SetCursor(m.doc.LineEnd(m.doc.Cursor()))
		m.syncViewport()
		return m, nil

	case "pgup":
		for i := 0; i < m.viewport.Height; i++ {
			m.moveVertical(-1)
		}
		return m, nil

	case "pgdown":
		for i := 0; i < m.viewport.Height; i++ {
			m.moveVertical(1)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.doc.Insert(m.doc.Cursor(), string(msg.Runes))
		m.afterEdit()
	case tea.KeySpace:
		m.doc.Insert(m.doc.Cursor(), " ")
		m.afterEdit()
	}
	return m, nil
}

func (m *EditorModel) updateSavePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.savePrompting = false
			return m, nil
		case "enter":
			name := m.saveInput.Value()
			if name == "" {
				return m, nil
			}
			m.savePrompting = false
			m.path = name
			return m, m.save()
		}
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return m, cmd
}

// afterEdit re-wraps the edited paragraph while continuous wrap is on and
// brings the cursor back into view.
func (m *EditorModel) afterEdit() {
	if m.ctrl.Active() && m.layout.ContinuousEnabled() {
		m.layout.WrapParagraph(m.doc, m.doc.Cursor(), m.ctrl.Width())
	}
	m.syncViewport()
}

// wrapViewportWidth returns the viewport width activation should derive
// the wrap width from. A configured fixed width takes precedence.
func (m *EditorModel) wrapViewportWidth() int {
	if m.settings.Wrap.Width > 0 {
		return m.settings.Wrap.Width + 1
	}
	if m.width > 0 {
		return m.width
	}
	return 80
}

func (m *EditorModel) save() tea.Cmd {
	err := files.SaveDocumentWith(m.doc, m.path, m.ctrl.BeforeWrite, m.ctrl.AfterWrite)
	m.syncViewport()
	if err != nil {
		return m.statusCmd(fmt.Sprintf("Error: %v", err))
	}
	if !m.ctrl.Active() {
		m.doc.SetModified(false)
	}
	if notice := m.takeNotice(); notice != "" {
		return m.statusCmd(fmt.Sprintf("%s → %s", notice, m.path))
	}
	return m.statusCmd("Saved " + m.path)
}

// copyLogicalForm puts the document's unfilled text on the system
// clipboard, leaving the on-screen wrapped form untouched.
func (m *EditorModel) copyLogicalForm() tea.Cmd {
	staged := m.doc.Clone()
	wrap.UnfillBuffer(staged, m.wrapOpts())
	if err := clipboard.WriteAll(staged.String()); err != nil {
		return m.statusCmd(fmt.Sprintf("Error: %v", err))
	}
	return m.statusCmd("Unfilled text → clipboard")
}

// paste inserts clipboard text at the cursor. While wrap is on, breaks in
// the pasted region are display artifacts of wherever the text came from,
// so they are converted to soft and the paragraph re-wraps.
func (m *EditorModel) paste() tea.Cmd {
	text, err := clipboard.ReadAll()
	if err != nil {
		return m.statusCmd(fmt.Sprintf("Error: %v", err))
	}
	if text == "" {
		return nil
	}
	start := m.doc.Cursor()
	m.doc.Insert(start, text)
	if m.ctrl.Active() {
		m.ctrl.ConvertBreaksToSoft(start, start+len([]rune(text)))
	}
	m.afterEdit()
	return nil
}

func (m *EditorModel) moveVertical(delta int) {
	cur := m.doc.Cursor()
	lineStart := m.doc.LineStart(cur)
	col := cur - lineStart

	if delta < 0 {
		if lineStart == 0 {
			return
		}
		prevStart := m.doc.LineStart(lineStart - 1)
		prevEnd := m.doc.LineEnd(prevStart)
		m.doc.SetCursor(minInt(prevStart+col, prevEnd))
	} else {
		lineEnd := m.doc.LineEnd(cur)
		if lineEnd == m.doc.Len() {
			return
		}
		nextStart := lineEnd + 1
		nextEnd := m.doc.LineEnd(nextStart)
		m.doc.SetCursor(minInt(nextStart+col, nextEnd))
	}
	m.syncViewport()
}

func (m *EditorModel) wrapOpts() wrap.Options {
	return wrap.Options{
		ForceHardReturns:         m.settings.Wrap.ForceHardReturns,
		DoubleSpaceAfterSentence: m.settings.Wrap.DoubleSpaceAfterSentence,
		DoubleSpaceAfterColon:    m.settings.Wrap.DoubleSpaceAfterColon,
	}
}

func (m *EditorModel) statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

func (m *EditorModel) takeNotice() string {
	notice := m.pendingNotice
	m.pendingNotice = ""
	return notice
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
