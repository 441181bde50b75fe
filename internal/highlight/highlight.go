// Package highlight renders note content with terminal syntax colors.
package highlight

import (
	"bytes"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/marcus/exnote/internal/notes"
)

// DefaultTheme matches the editor theme of the web version.
const DefaultTheme = "dracula"

// preferredThemes is the cycle order offered in the UI.
var preferredThemes = []string{
	"dracula",
	"monokai",
	"github-dark",
	"nord",
	"solarized-dark",
	"catppuccin-mocha",
}

// lexerNames maps highlighted languages to chroma lexer names.
// Plaintext and unknown languages are absent and render unhighlighted.
var lexerNames = map[notes.Language]string{
	notes.LangJavaScript: "javascript",
	notes.LangPython:     "python",
	notes.LangHTML:       "html",
	notes.LangCSS:        "css",
	notes.LangJSON:       "json",
}

// Highlighter colors content for a terminal using a chroma style.
type Highlighter struct {
	theme     string
	style     *chroma.Style
	formatter chroma.Formatter
	lexers    map[notes.Language]chroma.Lexer
}

// New creates a Highlighter using the named chroma style. Unknown styles fall back to DefaultTheme.
func New(theme string) *Highlighter {
	h := &Highlighter{
		formatter: formatters.Get("terminal256"),
		lexers:    make(map[notes.Language]chroma.Lexer),
	}
	h.SetTheme(theme)
	return h
}

// SetTheme switches the chroma style.
func (h *Highlighter) SetTheme(theme string) {
	if !slices.Contains(styles.Names(), theme) {
		theme = DefaultTheme
	}
	h.theme = theme
	h.style = styles.Get(theme)
}

// Theme returns the active style name.
func (h *Highlighter) Theme() string { return h.theme }

// NextTheme returns the theme after the active one in the UI cycle.
func (h *Highlighter) NextTheme() string {
	themes := Themes()
	for i, t := range themes {
		if t == h.theme {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// Themes returns the cycle of available themes.
func Themes() []string {
	names := styles.Names()
	var out []string
	for _, t := range preferredThemes {
		if slices.Contains(names, t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		out = append(out, DefaultTheme)
	}
	return out
}

// Enabled reports whether lang gets syntax colors.
func Enabled(lang notes.Language) bool {
	_, ok := lexerNames[lang]
	return ok
}

// Render returns content colored for lang. Content is returned unchanged for
// plaintext, unknown languages, or if tokenizing fails.
func (h *Highlighter) Render(content string, lang notes.Language) string {
	lexer := h.lexer(lang)
	if lexer == nil || content == "" {
		return content
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return content
	}
	return buf.String()
}

// RenderLines renders content and splits it into lines. Each line ends with a
// reset so colors never bleed into surrounding layout, and starts with the
// colors still open from the previous line so multi-line tokens keep theirs.
func (h *Highlighter) RenderLines(content string, lang notes.Language) []string {
	lines := strings.Split(h.Render(content, lang), "\n")
	if !Enabled(lang) {
		return lines
	}
	// Lexers may append a final newline; fold anything past the source's
	// line count (escape codes only) back into the last line.
	want := strings.Count(content, "\n") + 1
	if len(lines) > want {
		lines[want-1] += strings.Join(lines[want:], "")
		lines = lines[:want]
	}
	var open string
	for i, line := range lines {
		lines[i] = open + line + sgrReset
		open = openSGR(open, line)
	}
	return lines
}

const sgrReset = "\x1b[0m"

// openSGR returns the SGR sequences in effect after line, given those in
// effect before it.
func openSGR(open, line string) string {
	for {
		i := strings.Index(line, "\x1b[")
		if i < 0 {
			return open
		}
		rest := line[i+2:]
		end := strings.IndexByte(rest, 'm')
		if end < 0 {
			return open
		}
		params := rest[:end]
		if strings.Trim(params, "0123456789;") != "" {
			// Not an SGR sequence.
			line = rest
			continue
		}
		seq := "\x1b[" + params + "m"
		switch {
		case params == "" || params == "0":
			open = ""
		case strings.HasPrefix(params, "0;"):
			open = seq
		default:
			open += seq
		}
		line = rest[end+1:]
	}
}

func (h *Highlighter) lexer(lang notes.Language) chroma.Lexer {
	if l, ok := h.lexers[lang]; ok {
		return l
	}
	name, ok := lexerNames[lang]
	if !ok {
		return nil
	}
	l := lexers.Get(name)
	if l == nil {
		return nil
	}
	l = chroma.Coalesce(l)
	h.lexers[lang] = l
	return l
}
