package keymap

// Focus contexts.
const (
	ContextGlobal  = "global"
	ContextSidebar = "sidebar"
	ContextEditor  = "editor"
	ContextView    = "view"
	ContextSearch  = "search"
	ContextRename  = "rename"
	ContextConfirm = "confirm"
	ContextHelp    = "help"
)

// Commands.
const (
	CmdQuit          = "quit"
	CmdHelp          = "toggle-help"
	CmdNewNote       = "new-note"
	CmdCursorUp      = "cursor-up"
	CmdCursorDown    = "cursor-down"
	CmdCursorTop     = "cursor-top"
	CmdCursorBottom  = "cursor-bottom"
	CmdSelect        = "select"
	CmdSearch        = "search"
	CmdClearSearch   = "clear-search"
	CmdRename        = "rename"
	CmdDelete        = "delete"
	CmdSwitchPane    = "switch-pane"
	CmdEdit          = "edit"
	CmdBack          = "back"
	CmdCycleLanguage = "cycle-language"
	CmdCycleTheme    = "cycle-theme"
	CmdSave          = "save"
	CmdCopy          = "copy"
	CmdConfirm       = "confirm"
	CmdCancel        = "cancel"
	CmdFocusNext     = "focus-next"
	CmdActivate      = "activate"
)

// DefaultBindings returns the default key bindings.
func DefaultBindings() []Binding {
	return []Binding{
		// Global bindings
		{Key: "ctrl+c", Command: CmdQuit, Context: ContextGlobal},
		{Key: "ctrl+s", Command: CmdSave, Context: ContextGlobal},

		// Sidebar (note list)
		{Key: "q", Command: CmdQuit, Context: ContextSidebar},
		{Key: "?", Command: CmdHelp, Context: ContextSidebar},
		{Key: "n", Command: CmdNewNote, Context: ContextSidebar},
		{Key: "j", Command: CmdCursorDown, Context: ContextSidebar},
		{Key: "down", Command: CmdCursorDown, Context: ContextSidebar},
		{Key: "k", Command: CmdCursorUp, Context: ContextSidebar},
		{Key: "up", Command: CmdCursorUp, Context: ContextSidebar},
		{Key: "g", Command: CmdCursorTop, Context: ContextSidebar},
		{Key: "G", Command: CmdCursorBottom, Context: ContextSidebar},
		{Key: "enter", Command: CmdSelect, Context: ContextSidebar},
		{Key: "/", Command: CmdSearch, Context: ContextSidebar},
		{Key: "esc", Command: CmdClearSearch, Context: ContextSidebar},
		{Key: "r", Command: CmdRename, Context: ContextSidebar},
		{Key: "d", Command: CmdDelete, Context: ContextSidebar},
		{Key: "tab", Command: CmdSwitchPane, Context: ContextSidebar},
		{Key: "L", Command: CmdCycleLanguage, Context: ContextSidebar},
		{Key: "T", Command: CmdCycleTheme, Context: ContextSidebar},
		{Key: "c", Command: CmdCopy, Context: ContextSidebar},

		// Note view (highlighted, read-only)
		{Key: "q", Command: CmdQuit, Context: ContextView},
		{Key: "?", Command: CmdHelp, Context: ContextView},
		{Key: "e", Command: CmdEdit, Context: ContextView},
		{Key: "enter", Command: CmdEdit, Context: ContextView},
		{Key: "tab", Command: CmdSwitchPane, Context: ContextView},
		{Key: "esc", Command: CmdSwitchPane, Context: ContextView},
		{Key: "L", Command: CmdCycleLanguage, Context: ContextView},
		{Key: "T", Command: CmdCycleTheme, Context: ContextView},
		{Key: "c", Command: CmdCopy, Context: ContextView},
		{Key: "r", Command: CmdRename, Context: ContextView},
		{Key: "d", Command: CmdDelete, Context: ContextView},
		{Key: "j", Command: CmdCursorDown, Context: ContextView},
		{Key: "down", Command: CmdCursorDown, Context: ContextView},
		{Key: "k", Command: CmdCursorUp, Context: ContextView},
		{Key: "up", Command: CmdCursorUp, Context: ContextView},

		// Editor (typing); everything else goes to the textarea
		{Key: "esc", Command: CmdBack, Context: ContextEditor},
		{Key: "alt+c", Command: CmdCopy, Context: ContextEditor},

		// Search input
		{Key: "esc", Command: CmdClearSearch, Context: ContextSearch},
		{Key: "enter", Command: CmdSelect, Context: ContextSearch},
		{Key: "down", Command: CmdCursorDown, Context: ContextSearch},
		{Key: "ctrl+n", Command: CmdCursorDown, Context: ContextSearch},
		{Key: "up", Command: CmdCursorUp, Context: ContextSearch},
		{Key: "ctrl+p", Command: CmdCursorUp, Context: ContextSearch},

		// Rename input
		{Key: "enter", Command: CmdConfirm, Context: ContextRename},
		{Key: "esc", Command: CmdCancel, Context: ContextRename},

		// Delete confirmation
		{Key: "y", Command: CmdConfirm, Context: ContextConfirm},
		{Key: "n", Command: CmdCancel, Context: ContextConfirm},
		{Key: "esc", Command: CmdCancel, Context: ContextConfirm},
		{Key: "enter", Command: CmdActivate, Context: ContextConfirm},
		{Key: "tab", Command: CmdFocusNext, Context: ContextConfirm},
		{Key: "shift+tab", Command: CmdFocusNext, Context: ContextConfirm},
		{Key: "left", Command: CmdFocusNext, Context: ContextConfirm},
		{Key: "right", Command: CmdFocusNext, Context: ContextConfirm},

		// Help overlay
		{Key: "?", Command: CmdHelp, Context: ContextHelp},
		{Key: "esc", Command: CmdHelp, Context: ContextHelp},
		{Key: "q", Command: CmdHelp, Context: ContextHelp},
	}
}

// RegisterDefaults registers all default bindings with the registry.
func RegisterDefaults(r *Registry) {
	for _, b := range DefaultBindings() {
		r.RegisterBinding(b)
	}
}
