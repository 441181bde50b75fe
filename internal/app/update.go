package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/marcus/exnote/internal/clipboard"
	"github.com/marcus/exnote/internal/keymap"
	"github.com/marcus/exnote/internal/msg"
	"github.com/marcus/exnote/internal/notes"
	"github.com/marcus/exnote/internal/ui"
)

const toastDuration = 2 * time.Second

// Update handles all messages and returns the updated model and commands.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(message)

	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		m.ready = true
		m.resize()
		if m.showHelp {
			m.renderHelp()
		}
		return m, nil

	case msg.ToastMsg:
		m.toastSeq++
		m.toast = message.Message
		m.toastIsError = message.IsError
		return m, msg.ExpireToast(m.toastSeq, message.Duration)

	case msg.ToastExpiredMsg:
		if message.Seq == m.toastSeq {
			m.toast = ""
			m.toastIsError = false
		}
		return m, nil

	case clipboard.CopiedMsg:
		if !m.ack.Copied(message.Gen) {
			return m, nil
		}
		return m, tea.Batch(
			clipboard.ExpireAck(message.Gen, m.cfg.Clipboard.AckDuration),
			msg.ShowToast("Content Copied", toastDuration),
		)

	case clipboard.CopyFailedMsg:
		m.logger.Warn("clipboard write failed", zap.Error(message.Err))
		return m, msg.ShowError("Copy failed: "+message.Err.Error(), toastDuration)

	case clipboard.AckExpiredMsg:
		m.ack.Expire(message.Gen)
		return m, nil
	}

	// Cursor blink and other component messages
	return m.updateInputs(message)
}

// updateInputs forwards non-key messages to the focused input component.
func (m Model) updateInputs(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case PaneEditor:
		m.editor, cmd = m.editor.Update(message)
	case PaneSearch:
		m.searchInput, cmd = m.searchInput.Update(message)
	case PaneRename:
		m.renameInput, cmd = m.renameInput.Update(message)
	}
	return m, cmd
}

// handleKeyMsg resolves a key in the active context and dispatches it.
func (m Model) handleKeyMsg(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	context := m.activeContext()
	command, bound := m.keymap.Lookup(k, context)

	switch context {
	case keymap.ContextConfirm:
		if !bound {
			return m, nil
		}
		if command == keymap.CmdQuit {
			return m, tea.Quit
		}
		return m.handleConfirmCommand(command)

	case keymap.ContextHelp:
		if command == keymap.CmdHelp {
			m.showHelp = false
			return m, nil
		}
		if command == keymap.CmdQuit {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(k)
		return m, cmd
	}

	if bound {
		return m.runCommand(command)
	}

	switch m.focus {
	case PaneEditor:
		return m.handleEditorInput(k)
	case PaneSearch:
		before := m.searchInput.Value()
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(k)
		if m.searchInput.Value() != before {
			m.cursor = 0
		}
		return m, cmd
	case PaneRename:
		var cmd tea.Cmd
		m.renameInput, cmd = m.renameInput.Update(k)
		return m, cmd
	}
	return m, nil
}

// handleEditorInput sends a key to the textarea and records content changes.
func (m Model) handleEditorInput(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(k)

	after := m.editor.Value()
	if after == before {
		return m, cmd
	}
	id, ok := m.store.CurrentID()
	if !ok {
		return m, cmd
	}
	if err := m.store.Update(id, notes.FieldContent, after); err != nil {
		return m, tea.Batch(cmd, m.storageError("save content", err))
	}
	return m, cmd
}

// runCommand executes a bound command outside the dialog and help contexts.
func (m Model) runCommand(command string) (tea.Model, tea.Cmd) {
	switch command {
	case keymap.CmdQuit:
		return m, tea.Quit

	case keymap.CmdHelp:
		m.showHelp = true
		m.renderHelp()
		return m, nil

	case keymap.CmdSave:
		return m.saveNotes()

	case keymap.CmdNewNote:
		return m.createNote()

	case keymap.CmdCursorUp:
		return m.moveCursor(-1)

	case keymap.CmdCursorDown:
		return m.moveCursor(1)

	case keymap.CmdCursorTop:
		m.cursor = 0
		m.selectCursor()
		return m, nil

	case keymap.CmdCursorBottom:
		m.cursor = len(m.visibleNotes()) - 1
		m.selectCursor()
		return m, nil

	case keymap.CmdSelect:
		if m.focus == PaneSearch {
			m.searchInput.Blur()
			m.focus = PaneSidebar
			m.selectCursor()
			return m, nil
		}
		m.selectCursor()
		if _, ok := m.store.Current(); ok {
			m.focus = PaneView
		}
		return m, nil

	case keymap.CmdSearch:
		m.focus = PaneSearch
		return m, m.searchInput.Focus()

	case keymap.CmdClearSearch:
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.focus = PaneSidebar
		m.syncCursor()
		return m, nil

	case keymap.CmdRename:
		return m.startRename()

	case keymap.CmdConfirm:
		if m.focus == PaneRename {
			return m.finishRename()
		}

	case keymap.CmdCancel:
		if m.focus == PaneRename {
			m.renameInput.Blur()
			m.focus = PaneView
			return m, nil
		}

	case keymap.CmdDelete:
		return m.requestDelete()

	case keymap.CmdSwitchPane:
		if m.focus == PaneSidebar {
			if _, ok := m.store.Current(); ok {
				m.focus = PaneView
			}
		} else {
			m.focus = PaneSidebar
		}
		return m, nil

	case keymap.CmdEdit:
		if _, ok := m.store.Current(); !ok {
			return m, nil
		}
		m.focus = PaneEditor
		return m, m.editor.Focus()

	case keymap.CmdBack:
		m.editor.Blur()
		m.focus = PaneView
		return m, nil

	case keymap.CmdCycleLanguage:
		return m.cycleLanguage()

	case keymap.CmdCycleTheme:
		return m.cycleTheme()

	case keymap.CmdCopy:
		return m.copyContent()
	}
	return m, nil
}

// handleConfirmCommand drives the delete dialog.
func (m Model) handleConfirmCommand(command string) (tea.Model, tea.Cmd) {
	switch m.dialog.HandleCommand(command) {
	case ui.ActionConfirm:
		m.dialog = nil
		if err := m.confirm.Confirm(); err != nil {
			m.loadEditor()
			m.syncCursor()
			return m, m.storageError("delete note", err)
		}
		m.loadEditor()
		m.syncCursor()
		return m, msg.ShowToast("Note Deleted", toastDuration)

	case ui.ActionCancel:
		m.dialog = nil
		m.confirm.Cancel()
	}
	return m, nil
}

// moveCursor moves through the filtered list. In the sidebar the note under
// the cursor becomes current.
func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if m.focus == PaneView {
		m.viewScroll += delta
		if m.viewScroll < 0 {
			m.viewScroll = 0
		}
		return m, nil
	}
	m.cursor += delta
	if m.focus == PaneSearch {
		m.clampCursor()
		return m, nil
	}
	m.selectCursor()
	return m, nil
}

func (m *Model) clampCursor() {
	n := len(m.visibleNotes())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectCursor makes the note under the cursor current.
func (m *Model) selectCursor() {
	m.clampCursor()
	visible := m.visibleNotes()
	if len(visible) == 0 {
		return
	}
	id := visible[m.cursor].ID
	if cur, ok := m.store.CurrentID(); ok && cur == id {
		return
	}
	m.store.Select(id)
	m.loadEditor()
}

func (m Model) createNote() (tea.Model, tea.Cmd) {
	note, err := m.store.Create()
	if err != nil {
		// The note exists in memory even if the write failed.
		m.searchInput.SetValue("")
		m.loadEditor()
		m.syncCursor()
		return m, m.storageError("create note", err)
	}
	m.logger.Debug("note created", zap.Int64("id", note.ID))
	m.searchInput.SetValue("")
	m.searchInput.Blur()
	m.loadEditor()
	m.syncCursor()
	m.focus = PaneEditor
	return m, m.editor.Focus()
}

func (m Model) saveNotes() (tea.Model, tea.Cmd) {
	if err := m.store.Save(); err != nil {
		return m, m.storageError("save notes", err)
	}
	return m, msg.ShowToast("Note Saved", toastDuration)
}

func (m Model) startRename() (tea.Model, tea.Cmd) {
	note, ok := m.store.Current()
	if !ok {
		return m, nil
	}
	m.renameInput.SetValue(note.Title)
	m.renameInput.CursorEnd()
	m.focus = PaneRename
	return m, m.renameInput.Focus()
}

func (m Model) finishRename() (tea.Model, tea.Cmd) {
	m.renameInput.Blur()
	m.focus = PaneView
	id, ok := m.store.CurrentID()
	if !ok {
		return m, nil
	}
	title := strings.TrimSpace(m.renameInput.Value())
	if err := m.store.Rename(id, title); err != nil {
		return m, m.storageError("rename note", err)
	}
	m.syncCursor()
	return m, nil
}

func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	note, ok := m.store.Current()
	if !ok {
		return m, nil
	}
	m.confirm.Request(note.ID)

	d := ui.NewConfirmDialog("Delete note?",
		fmt.Sprintf("Delete %q? This cannot be undone.", note.Title))
	d.ConfirmLabel = " Delete "
	d.Danger = true
	m.dialog = d
	return m, nil
}

func (m Model) cycleLanguage() (tea.Model, tea.Cmd) {
	note, ok := m.store.Current()
	if !ok {
		return m, nil
	}
	next := note.Language.Next()
	if err := m.store.Update(note.ID, notes.FieldLanguage, string(next)); err != nil {
		return m, m.storageError("set language", err)
	}
	return m, nil
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	theme := m.highlighter.NextTheme()
	m.highlighter.SetTheme(theme)
	m.cfg.Editor.SyntaxTheme = theme
	if m.configPath != "" {
		if err := saveTheme(m.configPath, theme); err != nil {
			m.logger.Warn("save syntax theme failed", zap.String("theme", theme), zap.Error(err))
		}
	}
	return m, msg.ShowToast("Theme: "+theme, toastDuration)
}

// copyContent copies the current note's content to the clipboard.
func (m Model) copyContent() (tea.Model, tea.Cmd) {
	note, ok := m.store.Current()
	if !ok {
		return m, nil
	}
	gen := m.ack.Next()
	return m, clipboard.Copy(m.clip, note.Content, gen)
}

// storageError logs err and returns an error toast.
func (m Model) storageError(action string, err error) tea.Cmd {
	m.logger.Error(action+" failed", zap.Error(err))
	return msg.ShowError("Error: "+err.Error(), 3*time.Second)
}
