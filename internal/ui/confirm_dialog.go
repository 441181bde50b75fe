package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/exnote/internal/keymap"
	"github.com/marcus/exnote/internal/styles"
)

// Dialog actions.
const (
	ActionNone    = ""
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// ModalWidthMedium is the default dialog width.
const ModalWidthMedium = 50

// ConfirmDialog is a confirmation modal with two focusable buttons.
type ConfirmDialog struct {
	Title        string
	Message      string
	ConfirmLabel string // e.g. " Delete "
	CancelLabel  string
	Danger       bool
	Width        int

	cancelFocused bool
}

// NewConfirmDialog creates a dialog with confirm focused.
func NewConfirmDialog(title, message string) *ConfirmDialog {
	return &ConfirmDialog{
		Title:        title,
		Message:      message,
		ConfirmLabel: " Confirm ",
		CancelLabel:  " Cancel ",
		Width:        ModalWidthMedium,
	}
}

// Focused returns the action of the focused button.
func (d *ConfirmDialog) Focused() string {
	if d.cancelFocused {
		return ActionCancel
	}
	return ActionConfirm
}

// FocusNext moves focus to the other button.
func (d *ConfirmDialog) FocusNext() {
	d.cancelFocused = !d.cancelFocused
}

// HandleCommand applies a keymap command from the confirm context and
// returns the resulting action, or ActionNone if the dialog stays open.
func (d *ConfirmDialog) HandleCommand(cmd string) string {
	switch cmd {
	case keymap.CmdConfirm:
		return ActionConfirm
	case keymap.CmdCancel:
		return ActionCancel
	case keymap.CmdActivate:
		return d.Focused()
	case keymap.CmdFocusNext:
		d.FocusNext()
	}
	return ActionNone
}

// View renders the dialog box.
func (d *ConfirmDialog) View() string {
	box := styles.ModalBox
	confirmFocused := styles.ButtonFocused
	if d.Danger {
		box = styles.ModalBoxDanger
		confirmFocused = styles.ButtonDangerFocused
	}

	confirm := styles.Button.Render(d.ConfirmLabel)
	cancel := styles.Button.Render(d.CancelLabel)
	if d.cancelFocused {
		cancel = styles.ButtonFocused.Render(d.CancelLabel)
	} else {
		confirm = confirmFocused.Render(d.ConfirmLabel)
	}

	inner := d.Width - box.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitle.Render(d.Title),
		lipgloss.NewStyle().Width(inner).Render(d.Message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel),
	)
	return box.Render(body)
}
