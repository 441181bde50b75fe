package notes

import "strings"

// Filter returns the notes whose title contains term, ignoring case, in their
// original order. An empty term returns every note. The result is never nil and
// the input is not modified.
func Filter(notes []Note, term string) []Note {
	if term == "" {
		out := make([]Note, len(notes))
		copy(out, notes)
		return out
	}

	needle := strings.ToLower(term)
	out := make([]Note, 0)
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), needle) {
			out = append(out, n)
		}
	}
	return out
}
