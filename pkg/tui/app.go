package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/softwrap/softwrap/pkg/models"
)

// App is the top-level bubbletea model: a single editor pane plus the
// transient status text routed into its status bar.
type App struct {
	editor *EditorModel
	width  int
	height int
}

// NewApp creates the application model for the given file path. An empty
// path opens a scratch document.
func NewApp(path string, settings *models.Settings) (*App, error) {
	editor, err := NewEditorModel(path, settings)
	if err != nil {
		return nil, err
	}
	return &App{editor: editor}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.editor.SetStatus(string(msg))
		return a, nil
	}

	var cmd tea.Cmd
	var model tea.Model
	model, cmd = a.editor.Update(msg)
	if ed, ok := model.(*EditorModel); ok {
		a.editor = ed
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}
	return a.editor.View()
}
