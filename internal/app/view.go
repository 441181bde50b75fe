package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/exnote/internal/keymap"
	"github.com/marcus/exnote/internal/notes"
	"github.com/marcus/exnote/internal/styles"
	"github.com/marcus/exnote/internal/ui"
)

const emptyStateText = "Select a note or create a new one"

// View renders the entire application UI.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sidebarWidth, contentHeight := m.layout()
	sidebar := m.renderSidebar(sidebarWidth, contentHeight)
	editor := m.renderEditorPane(m.width-sidebarWidth, contentHeight)
	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, editor)
	if m.cfg.UI.ShowFooter {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.renderFooter())
	}

	switch {
	case m.dialog != nil:
		return ui.Overlay(content, m.dialog.View(), m.width, m.height)
	case m.showHelp:
		return ui.Overlay(content, styles.ModalBox.Render(m.help.View()), m.width, m.height)
	}
	return content
}

// panel returns the border style for a pane.
func panel(active bool, width, height int) lipgloss.Style {
	style := styles.PanelInactive
	if active {
		style = styles.PanelActive
	}
	return style.Width(width - 2).Height(height - 2)
}

// renderSidebar renders the title, search input and the filtered note list.
func (m Model) renderSidebar(width, height int) string {
	inner := width - 4 // borders + padding
	if inner < 1 {
		inner = 1
	}
	active := m.focus == PaneSidebar || m.focus == PaneSearch

	var b strings.Builder
	b.WriteString(styles.Logo.Render("eXNote"))
	b.WriteString("\n")
	if m.focus == PaneSearch || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
	} else {
		b.WriteString(styles.Muted.Render("/ search"))
	}
	b.WriteString("\n\n")

	visible := m.visibleNotes()
	listHeight := height - 2 - 4 // borders, header lines, footer hint
	if listHeight < 1 {
		listHeight = 1
	}

	if len(visible) == 0 {
		if m.searchInput.Value() != "" {
			b.WriteString(styles.Muted.Render("No matches"))
		} else {
			b.WriteString(styles.Muted.Render("No notes yet"))
		}
		b.WriteString("\n")
	} else {
		currentID, hasCurrent := m.store.CurrentID()
		start := 0
		if m.cursor >= listHeight {
			start = m.cursor - listHeight + 1
		}
		end := min(start+listHeight, len(visible))
		for i := start; i < end; i++ {
			n := visible[i]
			title := runewidth.FillRight(runewidth.Truncate(displayTitle(n), inner, "…"), inner)
			switch {
			case hasCurrent && n.ID == currentID:
				title = styles.ListItemSelected.Render(title)
			case i == m.cursor && m.focus == PaneSearch:
				title = styles.ListCursor.Render(title)
			default:
				title = styles.ListItemNormal.Render(title)
			}
			b.WriteString(title)
			b.WriteString("\n")
		}
	}

	body := strings.TrimRight(b.String(), "\n")
	bodyLines := strings.Count(body, "\n") + 1
	if pad := height - 2 - bodyLines - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	body += "\n" + styles.Muted.Render(m.keyFor(keymap.ContextSidebar, keymap.CmdNewNote)+" new note")

	return panel(active, width, height).Render(body)
}

// renderEditorPane renders the current note header and its content.
func (m Model) renderEditorPane(width, height int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}
	active := m.focus == PaneView || m.focus == PaneEditor || m.focus == PaneRename
	style := panel(active, width, height)

	note, ok := m.store.Current()
	if !ok {
		empty := lipgloss.Place(inner, height-2, lipgloss.Center, lipgloss.Center,
			styles.Muted.Render(emptyStateText))
		return style.Render(empty)
	}

	header := m.renderNoteHeader(note, inner)
	bodyHeight := height - 2 - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	if m.focus == PaneEditor {
		body = m.editor.View()
	} else {
		body = m.renderHighlighted(note, inner, bodyHeight)
	}
	return style.Render(header + "\n\n" + body)
}

// renderNoteHeader renders the title (or rename input), language badge and copy ack.
func (m Model) renderNoteHeader(note notes.Note, width int) string {
	right := styles.LanguageBadge.Render(note.Language.Label())
	if m.ack.Active() {
		right = styles.Copied.Render("✓ Copied") + " " + right
	}

	var left string
	if m.focus == PaneRename {
		left = m.renameInput.View()
	} else {
		avail := width - lipgloss.Width(right) - 1
		if avail < 1 {
			avail = 1
		}
		left = styles.Title.Render(ansi.Truncate(displayTitle(note), avail, "…"))
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHighlighted renders the read view: syntax colored lines with line numbers.
func (m Model) renderHighlighted(note notes.Note, width, height int) string {
	if note.Content == "" {
		return styles.Muted.Render("Empty note. Press " + m.keyFor(keymap.ContextView, keymap.CmdEdit) + " to edit.")
	}

	tab := strings.Repeat(" ", m.cfg.Editor.TabWidth)
	lines := m.highlighter.RenderLines(strings.ReplaceAll(note.Content, "\t", tab), note.Language)

	start := min(m.viewScroll, max(len(lines)-1, 0))
	end := min(start+height, len(lines))

	gutter := 0
	if m.cfg.Editor.LineNumbers {
		gutter = len(fmt.Sprint(len(lines))) + 1
	}
	textWidth := max(width-gutter, 1)

	out := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := ansi.Truncate(lines[i], textWidth, "")
		if gutter > 0 {
			line = styles.Muted.Render(fmt.Sprintf("%*d ", gutter-1, i+1)) + line
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// renderFooter renders key hints for the active context and the toast.
func (m Model) renderFooter() string {
	toast := ""
	if m.toast != "" {
		style := styles.ToastSuccess
		if m.toastIsError {
			style = styles.ToastError
		}
		toast = style.Render(m.toast)
	}

	avail := m.width - lipgloss.Width(toast) - 2
	hints := renderHintLine(m.keymap.Hints(m.activeContext()), avail)

	gap := m.width - lipgloss.Width(hints) - lipgloss.Width(toast)
	if gap < 0 {
		gap = 0
	}
	return styles.Footer.Width(m.width).MaxWidth(m.width).Render(hints + strings.Repeat(" ", gap) + toast)
}

// renderHintLine joins hints until width is exhausted.
func renderHintLine(hints []keymap.Hint, width int) string {
	var parts []string
	used := 0
	for _, h := range hints {
		part := styles.KeyHint.Render(h.Key) + " " + formatCommandName(h.Command)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += 2
		}
		if used+w > width {
			break
		}
		parts = append(parts, part)
		used += w
	}
	return strings.Join(parts, "  ")
}

// keyFor returns the first key bound to cmd in context.
func (m Model) keyFor(context, cmd string) string {
	if keys := m.keymap.KeysFor(context, cmd); len(keys) > 0 {
		return keys[0]
	}
	return cmd
}

func displayTitle(n notes.Note) string {
	if n.Title == "" {
		return notes.DefaultTitle
	}
	return n.Title
}
