package notes

// Note represents a single note.
type Note struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Language Language `json:"language"`
}

// Language selects highlighting for a note. It has no effect on stored content.
type Language string

const (
	LangPlaintext  Language = "plaintext"
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangHTML       Language = "html"
	LangCSS        Language = "css"
	LangJSON       Language = "json"
)

// Languages lists the supported languages in selector order.
var Languages = []Language{
	LangPlaintext,
	LangJavaScript,
	LangPython,
	LangHTML,
	LangCSS,
	LangJSON,
}

// Known reports whether l is one of the supported languages.
func (l Language) Known() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Label returns the display name for the language.
func (l Language) Label() string {
	switch l {
	case LangPlaintext:
		return "Plain Text"
	case LangJavaScript:
		return "JavaScript"
	case LangPython:
		return "Python"
	case LangHTML:
		return "HTML"
	case LangCSS:
		return "CSS"
	case LangJSON:
		return "JSON"
	default:
		return string(l)
	}
}

// Next returns the language after l in selector order, wrapping around.
// Unknown languages cycle back to plaintext.
func (l Language) Next() Language {
	for i, known := range Languages {
		if l == known {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return LangPlaintext
}

// Field names a mutable note field.
type Field string

const (
	FieldTitle    Field = "title"
	FieldContent  Field = "content"
	FieldLanguage Field = "language"
)

const (
	// DefaultTitle is the title given to newly created notes.
	DefaultTitle = "Untitled"

	// StorageKey is the durable store key holding the serialized collection.
	StorageKey = "notes"
)

// set applies value to the named field. It reports false for unknown fields.
func (n *Note) set(field Field, value string) bool {
	switch field {
	case FieldTitle:
		n.Title = value
	case FieldContent:
		n.Content = value
	case FieldLanguage:
		n.Language = Language(value)
	default:
		return false
	}
	return true
}

// get returns the current value of the named field.
func (n *Note) get(field Field) string {
	switch field {
	case FieldTitle:
		return n.Title
	case FieldContent:
		return n.Content
	case FieldLanguage:
		return string(n.Language)
	}
	return ""
}
