package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/marcus/exnote/internal/clipboard"
	"github.com/marcus/exnote/internal/config"
	"github.com/marcus/exnote/internal/highlight"
	"github.com/marcus/exnote/internal/keymap"
	"github.com/marcus/exnote/internal/notes"
	"github.com/marcus/exnote/internal/styles"
	"github.com/marcus/exnote/internal/ui"
)

// FocusPane identifies which pane receives keys.
type FocusPane int

const (
	PaneSidebar FocusPane = iota // note list
	PaneView                     // highlighted read view
	PaneEditor                   // textarea
	PaneSearch                   // search input
	PaneRename                   // title input
)

// Model is the root Bubble Tea model for exnote.
type Model struct {
	cfg    *config.Config
	logger *zap.Logger

	// Configuration file updated when the syntax theme changes; empty disables.
	configPath string

	// Notes
	store   *notes.Store
	confirm *notes.DeleteConfirm
	dialog  *ui.ConfirmDialog // non-nil while a delete is pending

	// Collaborators
	keymap      *keymap.Registry
	highlighter *highlight.Highlighter
	clip        clipboard.Writer
	ack         clipboard.Ack

	// UI state
	width, height int
	ready         bool
	focus         FocusPane
	cursor        int // index into the filtered list
	viewScroll    int // first visible line of the read view

	searchInput textinput.Model
	renameInput textinput.Model
	editor      textarea.Model

	showHelp bool
	help     viewport.Model

	// Toast
	toast        string
	toastIsError bool
	toastSeq     int
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClipboard replaces the system clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(m *Model) { m.clip = w }
}

// WithConfigPath enables persisting the syntax theme to path.
func WithConfigPath(path string) Option {
	return func(m *Model) { m.configPath = path }
}

// New creates the application model. The store should already be loaded.
func New(store *notes.Store, km *keymap.Registry, cfg *config.Config, opts ...Option) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		cfg:         cfg,
		logger:      zap.NewNop(),
		store:       store,
		confirm:     notes.NewDeleteConfirm(store),
		keymap:      km,
		highlighter: highlight.New(cfg.Editor.SyntaxTheme),
		clip:        clipboard.System{},
		focus:       PaneSidebar,
	}
	for _, opt := range opts {
		opt(&m)
	}

	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "Search notes"
	si.PromptStyle = styles.Muted
	si.PlaceholderStyle = styles.Muted
	m.searchInput = si

	ri := textinput.New()
	ri.Prompt = ""
	ri.Placeholder = notes.DefaultTitle
	ri.CharLimit = 200
	m.renameInput = ri

	ta := textarea.New()
	ta.ShowLineNumbers = cfg.Editor.LineNumbers
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Prompt = ""
	ta.Placeholder = "Start typing..."
	ta.FocusedStyle = textarea.Style{
		Base:             lipgloss.NewStyle(),
		CursorLine:       lipgloss.NewStyle(),
		CursorLineNumber: styles.Muted,
		EndOfBuffer:      styles.Muted,
		LineNumber:       styles.Muted,
		Placeholder:      styles.Muted,
		Prompt:           lipgloss.NewStyle(),
		Text:             lipgloss.NewStyle(),
	}
	ta.BlurredStyle = ta.FocusedStyle
	// alt+c copies instead of capitalizing
	ta.KeyMap.CapitalizeWordForward = key.NewBinding(key.WithDisabled())
	ta.Blur()
	m.editor = ta

	vp := viewport.New(0, 0)
	vp.KeyMap.Up = key.NewBinding(key.WithKeys("k", "up"))
	vp.KeyMap.Down = key.NewBinding(key.WithKeys("j", "down"))
	vp.KeyMap.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))
	vp.KeyMap.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))
	m.help = vp

	m.loadEditor()
	m.syncCursor()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// activeContext returns the keymap context for the current focus.
func (m Model) activeContext() string {
	switch {
	case m.dialog != nil:
		return keymap.ContextConfirm
	case m.showHelp:
		return keymap.ContextHelp
	}
	switch m.focus {
	case PaneView:
		return keymap.ContextView
	case PaneEditor:
		return keymap.ContextEditor
	case PaneSearch:
		return keymap.ContextSearch
	case PaneRename:
		return keymap.ContextRename
	default:
		return keymap.ContextSidebar
	}
}

// visibleNotes returns the collection filtered by the search term.
func (m Model) visibleNotes() []notes.Note {
	return notes.Filter(m.store.Notes(), m.searchInput.Value())
}

// syncCursor moves the list cursor onto the current note when it is visible,
// otherwise clamps it to the filtered list.
func (m *Model) syncCursor() {
	visible := m.visibleNotes()
	if id, ok := m.store.CurrentID(); ok {
		for i, n := range visible {
			if n.ID == id {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// loadEditor puts the current note's content into the textarea.
func (m *Model) loadEditor() {
	m.viewScroll = 0
	note, ok := m.store.Current()
	if !ok {
		m.editor.SetValue("")
		m.editor.Blur()
		if m.focus == PaneEditor || m.focus == PaneView || m.focus == PaneRename {
			m.focus = PaneSidebar
		}
		return
	}
	m.editor.SetValue(note.Content)
}

// layout returns the sidebar width and the content height.
func (m Model) layout() (sidebarWidth, contentHeight int) {
	sidebarWidth = m.width * m.cfg.UI.SidebarWidth / 100
	if sidebarWidth < 20 {
		sidebarWidth = 20
	}
	contentHeight = m.height
	if m.cfg.UI.ShowFooter {
		contentHeight--
	}
	if contentHeight < 3 {
		contentHeight = 3
	}
	return sidebarWidth, contentHeight
}

// resize updates component sizes from the window dimensions.
func (m *Model) resize() {
	sidebarWidth, contentHeight := m.layout()
	editorWidth := m.width - sidebarWidth - 4 // borders + padding
	if editorWidth < 1 {
		editorWidth = 1
	}
	bodyHeight := contentHeight - 2 - 2 // borders + header
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(bodyHeight)
	m.searchInput.Width = sidebarWidth - 6
	m.renameInput.Width = editorWidth - 16
	m.help.Width = min(m.width-6, 80)
	m.help.Height = max(m.height-6, 3)
}
