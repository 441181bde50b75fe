// Package clipboard copies note content to the system clipboard from Bubble Tea commands.
package clipboard

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// AckDuration is how long the copied acknowledgment stays visible by default.
const AckDuration = 2 * time.Second

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the platform clipboard.
type System struct{}

// WriteAll copies text to the platform clipboard.
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Unsupported reports whether no clipboard utility is available on this system.
func Unsupported() bool {
	return clipboard.Unsupported
}

// CopiedMsg reports a successful copy.
type CopiedMsg struct {
	Gen int
}

// CopyFailedMsg reports a failed copy.
type CopyFailedMsg struct {
	Err error
}

// AckExpiredMsg clears the copied acknowledgment for generation Gen.
type AckExpiredMsg struct {
	Gen int
}

// Copy returns a command that writes text off the update loop.
// gen identifies this copy so a later copy's acknowledgment is not cleared early.
func Copy(w Writer, text string, gen int) tea.Cmd {
	return func() tea.Msg {
		if err := w.WriteAll(text); err != nil {
			return CopyFailedMsg{Err: err}
		}
		return CopiedMsg{Gen: gen}
	}
}

// ExpireAck returns a command that emits AckExpiredMsg for gen after d.
func ExpireAck(gen int, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = AckDuration
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return AckExpiredMsg{Gen: gen}
	})
}

// Ack tracks the transient "copied" flag.
type Ack struct {
	gen    int
	copied bool
}

// Next starts a new copy and returns its generation.
func (a *Ack) Next() int {
	a.gen++
	return a.gen
}

// Copied marks gen as copied. Stale generations are ignored.
func (a *Ack) Copied(gen int) bool {
	if gen != a.gen {
		return false
	}
	a.copied = true
	return true
}

// Expire clears the flag if gen is still the latest copy.
func (a *Ack) Expire(gen int) {
	if gen == a.gen {
		a.copied = false
	}
}

// Active reports whether the copied flag is set.
func (a *Ack) Active() bool { return a.copied }
