package notes

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrUnknownField is returned by Update for a field that is not title, content or language.
var ErrUnknownField = errors.New("unknown note field")

// Storage is the durable key/value capability the store persists through.
type Storage interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// Store owns the note collection and the current selection.
// Every effective mutation writes the full collection to storage once.
type Store struct {
	storage Storage
	logger  *zap.Logger
	now     func() time.Time

	notes      []Note
	currentID  int64
	hasCurrent bool
	lastID     int64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for recoverable storage problems.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source used to derive note IDs.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty Store backed by storage. Call Load to read persisted notes.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one.
// Missing or malformed data yields an empty collection. Only a failing
// storage read is reported, and the collection is still left empty.
func (s *Store) Load() error {
	s.notes = nil
	s.hasCurrent = false
	s.currentID = 0
	s.lastID = 0

	data, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Warn("notes: read storage failed", zap.Error(err))
		return fmt.Errorf("read notes: %w", err)
	}
	if !ok {
		return nil
	}

	notes, err := Decode(data)
	if err != nil {
		s.logger.Warn("notes: discarding unreadable collection",
			zap.Error(err), zap.Int("bytes", len(data)))
		return nil
	}

	s.notes = notes
	for _, n := range notes {
		if n.ID > s.lastID {
			s.lastID = n.ID
		}
	}
	if len(s.notes) > 0 {
		s.currentID = s.notes[0].ID
		s.hasCurrent = true
	}
	s.logger.Debug("notes: loaded", zap.Int("count", len(s.notes)))
	return nil
}

// Create appends a new untitled note, makes it current and persists.
// The note is kept in memory even if the write fails.
func (s *Store) Create() (Note, error) {
	note := Note{
		ID:       s.nextID(),
		Title:    DefaultTitle,
		Content:  "",
		Language: LangPlaintext,
	}
	s.notes = append(s.notes, note)
	s.currentID = note.ID
	s.hasCurrent = true

	if err := s.persist(); err != nil {
		return note, err
	}
	return note, nil
}

// nextID derives an ID from the clock in milliseconds, bumped past every
// ID issued or loaded so far.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Select makes the note with id current. Unknown IDs leave the selection unchanged.
func (s *Store) Select(id int64) bool {
	if s.index(id) < 0 {
		return false
	}
	s.currentID = id
	s.hasCurrent = true
	return true
}

// Update sets field on the note with id and persists. Unknown IDs are a no-op.
// Language values are stored as given; see Language.Known.
func (s *Store) Update(id int64, field Field, value string) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	if !s.notes[i].set(field, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return s.persist()
}

// Rename sets the title of the note with id. Renaming to the current title does nothing.
func (s *Store) Rename(id int64, title string) error {
	i := s.index(id)
	if i < 0 || s.notes[i].get(FieldTitle) == title {
		return nil
	}
	return s.Update(id, FieldTitle, title)
}

// ConfirmDelete removes the note with id and persists. If it was current,
// the new first note becomes current, or nothing when the collection is empty.
// Callers go through DeleteConfirm rather than calling this directly.
func (s *Store) ConfirmDelete(id int64) error {
	i := s.index(id)
	if i < 0 {
		return nil
	}
	s.notes = append(s.notes[:i:i], s.notes[i+1:]...)

	if s.hasCurrent && s.currentID == id {
		if len(s.notes) > 0 {
			s.currentID = s.notes[0].ID
		} else {
			s.currentID = 0
			s.hasCurrent = false
		}
	}
	return s.persist()
}

// Save writes the full collection even when nothing changed.
func (s *Store) Save() error {
	return s.persist()
}

// Notes returns a copy of the collection in creation order.
func (s *Store) Notes() []Note {
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int { return len(s.notes) }

// Get returns the note with id.
func (s *Store) Get(id int64) (Note, bool) {
	i := s.index(id)
	if i < 0 {
		return Note{}, false
	}
	return s.notes[i], true
}

// Current returns the current note, resolved by ID.
func (s *Store) Current() (Note, bool) {
	if !s.hasCurrent {
		return Note{}, false
	}
	return s.Get(s.currentID)
}

// CurrentID returns the ID of the current note.
func (s *Store) CurrentID() (int64, bool) {
	return s.currentID, s.hasCurrent
}

func (s *Store) index(id int64) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist() error {
	data, err := Encode(s.notes)
	if err != nil {
		return err
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		s.logger.Error("notes: write storage failed", zap.Error(err), zap.Int("count", len(s.notes)))
		return fmt.Errorf("write notes: %w", err)
	}
	return nil
}
