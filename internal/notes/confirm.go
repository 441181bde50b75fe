package notes

// ConfirmState is the state of a DeleteConfirm.
type ConfirmState int

const (
	ConfirmIdle ConfirmState = iota
	ConfirmPending
)

// String returns the state name.
func (c ConfirmState) String() string {
	if c == ConfirmPending {
		return "pending"
	}
	return "idle"
}

// Deleter removes a note once deletion has been confirmed.
type Deleter interface {
	ConfirmDelete(id int64) error
}

// DeleteConfirm guards note deletion behind an explicit confirm step.
// It is owned by the presentation layer; the store is only touched on Confirm.
type DeleteConfirm struct {
	deleter   Deleter
	state     ConfirmState
	pendingID int64
}

// NewDeleteConfirm creates an idle DeleteConfirm that deletes through d.
func NewDeleteConfirm(d Deleter) *DeleteConfirm {
	return &DeleteConfirm{deleter: d}
}

// Request records id as pending deletion, replacing any earlier request.
func (c *DeleteConfirm) Request(id int64) {
	c.state = ConfirmPending
	c.pendingID = id
}

// Confirm deletes the pending note and returns to idle.
// It does nothing when no deletion is pending.
func (c *DeleteConfirm) Confirm() error {
	if c.state != ConfirmPending {
		return nil
	}
	id := c.pendingID
	c.reset()
	return c.deleter.ConfirmDelete(id)
}

// Cancel discards the pending deletion.
func (c *DeleteConfirm) Cancel() {
	c.reset()
}

// Pending returns the note ID awaiting confirmation.
func (c *DeleteConfirm) Pending() (int64, bool) {
	return c.pendingID, c.state == ConfirmPending
}

// State returns the current state.
func (c *DeleteConfirm) State() ConfirmState { return c.state }

func (c *DeleteConfirm) reset() {
	c.state = ConfirmIdle
	c.pendingID = 0
}
