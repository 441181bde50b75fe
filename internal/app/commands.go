package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"github.com/marcus/exnote/internal/config"
	"github.com/marcus/exnote/internal/keymap"
	"github.com/marcus/exnote/internal/notes"
)

// saveTheme persists the syntax theme. Replaced in tests.
var saveTheme = config.SaveSyntaxTheme

// helpSections lists the contexts shown in the help screen, in order.
var helpSections = []struct {
	context string
	title   string
}{
	{keymap.ContextSidebar, "Notes list"},
	{keymap.ContextView, "Note view"},
	{keymap.ContextEditor, "Editing"},
	{keymap.ContextSearch, "Search"},
	{keymap.ContextConfirm, "Delete dialog"},
	{keymap.ContextGlobal, "Anywhere"},
}

// helpMarkdown builds the help text from the active bindings.
func helpMarkdown(km *keymap.Registry) string {
	var b strings.Builder
	b.WriteString("# eXNote\n\n")
	b.WriteString("Notes are saved as you type. Deleting a note asks for confirmation.\n\n")

	for _, section := range helpSections {
		hints := km.Hints(section.context)
		if len(hints) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n| --- | --- |\n", section.title)
		for _, h := range hints {
			keys := km.KeysFor(section.context, h.Command)
			fmt.Fprintf(&b, "| `%s` | %s |\n", formatBindingKeys(keys), formatCommandName(h.Command))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Languages\n\n")
	for _, lang := range notes.Languages {
		fmt.Fprintf(&b, "- %s\n", lang.Label())
	}
	return b.String()
}

// renderHelp renders the help markdown into the help viewport.
func (m *Model) renderHelp() {
	md := helpMarkdown(m.keymap)
	width := m.help.Width
	if width <= 0 {
		width = 80
	}

	out := md
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-4),
	)
	if err == nil {
		if rendered, rerr := r.Render(md); rerr == nil {
			out = rendered
		} else {
			err = rerr
		}
	}
	if err != nil {
		m.logger.Debug("help render failed", zap.Error(err))
	}
	m.help.SetContent(out)
	m.help.GotoTop()
}

// formatBindingKeys formats up to two keys for display.
func formatBindingKeys(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, ", ")
}

// formatCommandName converts a command ID to a display name.
func formatCommandName(cmd string) string {
	return strings.ReplaceAll(cmd, "-", " ")
}
