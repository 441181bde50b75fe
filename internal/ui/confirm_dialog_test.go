package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/marcus/exnote/internal/keymap"
)

func TestNewConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("Test Title", "Test message")

	assert.Equal(t, "Test Title", d.Title)
	assert.Equal(t, "Test message", d.Message)
	assert.Equal(t, " Confirm ", d.ConfirmLabel)
	assert.Equal(t, " Cancel ", d.CancelLabel)
	assert.Equal(t, ModalWidthMedium, d.Width)
	assert.Equal(t, ActionConfirm, d.Focused())
}

func TestConfirmDialog_View(t *testing.T) {
	d := NewConfirmDialog("Delete note?", "This cannot be undone.")
	d.ConfirmLabel = " Delete "
	d.Danger = true

	out := ansi.Strip(d.View())
	assert.Contains(t, out, "Delete note?")
	assert.Contains(t, out, "This cannot be undone.")
	assert.Contains(t, out, "Delete")
	assert.Contains(t, out, "Cancel")
}

func TestConfirmDialog_HandleCommand(t *testing.T) {
	tests := []struct {
		name string
		cmds []string
		want string
	}{
		{"confirm key", []string{keymap.CmdConfirm}, ActionConfirm},
		{"cancel key", []string{keymap.CmdCancel}, ActionCancel},
		{"enter on default focus", []string{keymap.CmdActivate}, ActionConfirm},
		{"enter after tab", []string{keymap.CmdFocusNext, keymap.CmdActivate}, ActionCancel},
		{"tab twice wraps", []string{keymap.CmdFocusNext, keymap.CmdFocusNext, keymap.CmdActivate}, ActionConfirm},
		{"unknown command", []string{keymap.CmdCopy}, ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewConfirmDialog("t", "m")
			got := ActionNone
			for _, c := range tc.cmds {
				got = d.HandleCommand(c)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
