package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockWidth(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"empty", []string{}, 0},
		{"single", []string{"hello"}, 5},
		{"multiple", []string{"hi", "hello", "hey"}, 5},
		{"with ansi", []string{"\x1b[31mred\x1b[0m"}, 3},
		{"wide runes", []string{"日本"}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, blockWidth(tc.lines))
		})
	}
}

func TestSpliceRow(t *testing.T) {
	row := ansi.Strip(spliceRow("abcdefghij", "XY", 3, 2))
	assert.Equal(t, "abcXYfghij", row)

	// Background shorter than the splice point is padded.
	row = ansi.Strip(spliceRow("ab", "XY", 4, 2))
	assert.Equal(t, "ab  XY", row)
}

func TestOverlay_CentersBox(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 10)+"\n", 4) + strings.Repeat(".", 10)
	out := Overlay(bg, "ab\ncd", 10, 5)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "..........", ansi.Strip(lines[0]))
	assert.Equal(t, "....ab....", ansi.Strip(lines[1]))
	assert.Equal(t, "....cd....", ansi.Strip(lines[2]))
	assert.Equal(t, "..........", ansi.Strip(lines[4]))
}

func TestOverlay_PadsShortBackground(t *testing.T) {
	out := Overlay("", "x", 3, 3)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " x", ansi.Strip(lines[1]))
}
