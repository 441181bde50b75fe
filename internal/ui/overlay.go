// Package ui provides shared UI components and helpers for the TUI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle greys out background content behind a modal. Existing colors are
// stripped first since faint does not combine reliably with them.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// blockWidth returns the widest visual width among lines.
func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// spliceRow places fg at column x over a dimmed copy of bg.
func spliceRow(bg, fg string, x, fgWidth int) string {
	plain := ansi.Strip(bg)
	plainWidth := ansi.StringWidth(plain)

	var b strings.Builder
	if x > 0 {
		left := ansi.Truncate(plain, x, "")
		b.WriteString(DimStyle.Render(left))
		if pad := x - ansi.StringWidth(left); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	b.WriteString(fg)
	if end := x + fgWidth; plainWidth > end {
		b.WriteString(DimStyle.Render(ansi.Cut(plain, end, plainWidth)))
	}
	return b.String()
}

// Overlay centers box over a dimmed background of the given size.
func Overlay(background, box string, width, height int) string {
	bg := strings.Split(background, "\n")
	fg := strings.Split(box, "\n")

	fgWidth := blockWidth(fg)
	x := max(0, (width-fgWidth)/2)
	y := max(0, (height-len(fg))/2)

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		line := ""
		if row < len(bg) {
			line = bg[row]
		}
		if i := row - y; i >= 0 && i < len(fg) {
			rows[row] = spliceRow(line, fg[i], x, fgWidth)
			continue
		}
		rows[row] = DimStyle.Render(ansi.Strip(line))
	}
	return strings.Join(rows, "\n")
}
