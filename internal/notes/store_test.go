package notes

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/exnote/internal/kv"
)

// fixedClock returns a clock that always reports ms milliseconds since the epoch.
func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func newTestStore(t *testing.T, mem *kv.Memory, opts ...Option) *Store {
	t.Helper()
	s := NewStore(mem, opts...)
	require.NoError(t, s.Load())
	return s
}

func TestLoad_Absent(t *testing.T) {
	s := newTestStore(t, kv.NewMemory())

	assert.Equal(t, 0, s.Len())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestLoad_Corrupt(t *testing.T) {
	for _, blob := range []string{"not json", "{\"id\": 1}", "[{\"id\": \"x\"}", ""} {
		mem := kv.NewMemory()
		require.NoError(t, mem.Set(StorageKey, []byte(blob)))

		s := NewStore(mem)
		require.NoError(t, s.Load(), "blob %q", blob)
		assert.Equal(t, 0, s.Len(), "blob %q", blob)
		_, ok := s.CurrentID()
		assert.False(t, ok, "blob %q", blob)
	}
}

func TestLoad_ReadError(t *testing.T) {
	mem := kv.NewMemory()
	require.NoError(t, mem.Close())

	s := NewStore(mem)
	err := s.Load()
	require.ErrorIs(t, err, kv.ErrClosed)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_SelectsFirst(t *testing.T) {
	mem := kv.NewMemory()
	blob := `[{"id":5,"title":"a","content":"","language":"plaintext"},{"id":9,"title":"b","content":"x","language":"python"}]`
	require.NoError(t, mem.Set(StorageKey, []byte(blob)))

	s := newTestStore(t, mem)
	require.Equal(t, 2, s.Len())
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, int64(5), cur.ID)
}

func TestLoad_EmptyArray(t *testing.T) {
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(StorageKey, []byte("[]")))

	s := newTestStore(t, mem)
	assert.Equal(t, 0, s.Len())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestCreate_Defaults(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1000)))

	n, err := s.Create()
	require.NoError(t, err)

	assert.Equal(t, Note{ID: 1000, Title: "Untitled", Content: "", Language: LangPlaintext}, n)
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, n, cur)
	assert.Equal(t, 1, mem.Writes())
}

func TestCreate_FreshIDs(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1000)))

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		n, err := s.Create()
		require.NoError(t, err)
		assert.False(t, seen[n.ID], "id %d reused", n.ID)
		seen[n.ID] = true

		cur, _ := s.CurrentID()
		assert.Equal(t, n.ID, cur)
	}
	assert.Equal(t, []int64{1000, 1001, 1002, 1003, 1004}, ids(s.Notes()))
}

func TestCreate_IDAfterLoadedNotes(t *testing.T) {
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(StorageKey, []byte(`[{"id":5000,"title":"a","content":"","language":"plaintext"}]`)))

	// Clock behind the stored IDs
	s := newTestStore(t, mem, WithClock(fixedClock(1000)))
	n, err := s.Create()
	require.NoError(t, err)
	assert.Equal(t, int64(5001), n.ID)
}

func TestCreate_AppendsInOrder(t *testing.T) {
	ms := int64(100)
	s := newTestStore(t, kv.NewMemory(), WithClock(func() time.Time {
		ms += 10
		return time.UnixMilli(ms)
	}))

	a, _ := s.Create()
	b, _ := s.Create()
	c, _ := s.Create()
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, ids(s.Notes()))
}

func TestSelect(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	a, _ := s.Create()
	b, _ := s.Create()
	writes := mem.Writes()

	assert.True(t, s.Select(a.ID))
	cur, _ := s.CurrentID()
	assert.Equal(t, a.ID, cur)

	before := s.Notes()
	assert.False(t, s.Select(999), "unknown id")
	cur, _ = s.CurrentID()
	assert.Equal(t, a.ID, cur, "unknown id must not change selection")
	assert.Equal(t, before, s.Notes())

	assert.True(t, s.Select(b.ID))
	assert.Equal(t, writes, mem.Writes(), "select does not persist")
}

func TestUpdate_Fields(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	n, _ := s.Create()

	require.NoError(t, s.Update(n.ID, FieldContent, "print(1)"))
	require.NoError(t, s.Update(n.ID, FieldLanguage, "python"))
	require.NoError(t, s.Update(n.ID, FieldTitle, "Script"))

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, Note{ID: n.ID, Title: "Script", Content: "print(1)", Language: LangPython}, cur)
	assert.Equal(t, 4, mem.Writes(), "one write per create/update")
}

func TestUpdate_LanguageDoesNotTouchContent(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1)))
	n, _ := s.Create()
	require.NoError(t, s.Update(n.ID, FieldContent, "{\"a\": 1}"))

	require.NoError(t, s.Update(n.ID, FieldLanguage, string(LangJSON)))
	got, _ := s.Get(n.ID)
	assert.Equal(t, "{\"a\": 1}", got.Content)
}

func TestUpdate_PermissiveLanguage(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1)))
	n, _ := s.Create()

	require.NoError(t, s.Update(n.ID, FieldLanguage, "rust"))
	got, _ := s.Get(n.ID)
	assert.Equal(t, Language("rust"), got.Language)
	assert.False(t, got.Language.Known())
}

func TestUpdate_UnknownID(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	_, _ = s.Create()
	writes := mem.Writes()

	require.NoError(t, s.Update(42, FieldTitle, "x"))
	assert.Equal(t, writes, mem.Writes())
}

func TestUpdate_UnknownField(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	n, _ := s.Create()
	writes := mem.Writes()

	err := s.Update(n.ID, Field("id"), "7")
	require.ErrorIs(t, err, ErrUnknownField)
	assert.Equal(t, writes, mem.Writes())
	got, _ := s.Get(n.ID)
	assert.Equal(t, n, got)
}

func TestUpdate_NonCurrentNote(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1)))
	a, _ := s.Create()
	b, _ := s.Create()

	require.NoError(t, s.Update(a.ID, FieldTitle, "A"))
	cur, _ := s.Current()
	assert.Equal(t, b.ID, cur.ID, "updating another note keeps selection")
	got, _ := s.Get(a.ID)
	assert.Equal(t, "A", got.Title)
}

func TestRename(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	n, _ := s.Create()

	require.NoError(t, s.Rename(n.ID, "Plan"))
	assert.Equal(t, 2, mem.Writes())
	cur, _ := s.Current()
	assert.Equal(t, "Plan", cur.Title)

	require.NoError(t, s.Rename(n.ID, "Plan"))
	assert.Equal(t, 2, mem.Writes(), "renaming to the same title is a no-op")

	require.NoError(t, s.Rename(777, "Other"))
	assert.Equal(t, 2, mem.Writes())
}

func TestConfirmDelete_OnlyNote(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	n, _ := s.Create()

	require.NoError(t, s.ConfirmDelete(n.ID))
	assert.Equal(t, 0, s.Len())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.Equal(t, 2, mem.Writes())

	blob, _, _ := mem.Get(StorageKey)
	assert.JSONEq(t, "[]", string(blob))
}

func TestConfirmDelete_CurrentWithOthers(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1)))
	a, _ := s.Create()
	b, _ := s.Create()
	c, _ := s.Create()

	s.Select(b.ID)
	require.NoError(t, s.ConfirmDelete(b.ID))
	cur, _ := s.CurrentID()
	assert.Equal(t, a.ID, cur, "current moves to the new first element")

	require.NoError(t, s.ConfirmDelete(a.ID))
	cur, _ = s.CurrentID()
	assert.Equal(t, c.ID, cur)
	assert.Equal(t, []int64{c.ID}, ids(s.Notes()))
}

func TestConfirmDelete_NonCurrent(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1)))
	a, _ := s.Create()
	b, _ := s.Create()

	require.NoError(t, s.ConfirmDelete(a.ID))
	cur, _ := s.CurrentID()
	assert.Equal(t, b.ID, cur)
}

func TestConfirmDelete_UnknownID(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1)))
	a, _ := s.Create()
	writes := mem.Writes()

	require.NoError(t, s.ConfirmDelete(a.ID+100))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, writes, mem.Writes())
}

func TestConfirmDelete_DoesNotAliasEarlierSnapshots(t *testing.T) {
	s := newTestStore(t, kv.NewMemory(), WithClock(fixedClock(1)))
	a, _ := s.Create()
	_, _ = s.Create()
	snapshot := s.Notes()

	require.NoError(t, s.ConfirmDelete(a.ID))
	assert.Equal(t, a.ID, snapshot[0].ID)
}

func TestSave(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem)

	require.NoError(t, s.Save())
	assert.Equal(t, 1, mem.Writes())
	blob, ok, _ := mem.Get(StorageKey)
	require.True(t, ok)
	assert.JSONEq(t, "[]", string(blob))
}

func TestWriteFailure(t *testing.T) {
	mem := kv.NewMemory()
	mem.FailWrites = errors.New("quota exceeded")
	s := newTestStore(t, mem, WithClock(fixedClock(1)))

	n, err := s.Create()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	// In-memory state keeps the mutation
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, n.ID, cur.ID)
}

func TestScenario_CreateRenameEditReload(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1000)))

	a, err := s.Create()
	require.NoError(t, err)
	require.Equal(t, int64(1000), a.ID)
	require.Equal(t, "Untitled", a.Title)

	require.NoError(t, s.Rename(a.ID, "Plan"))
	require.NoError(t, s.Update(a.ID, FieldContent, "buy milk"))

	reloaded := newTestStore(t, mem)
	require.Equal(t, 1, reloaded.Len())
	got := reloaded.Notes()[0]
	assert.Equal(t, "Plan", got.Title)
	assert.Equal(t, "buy milk", got.Content)
	assert.Equal(t, LangPlaintext, got.Language)

	cur, ok := reloaded.Current()
	require.True(t, ok)
	assert.Equal(t, a.ID, cur.ID)
}

func TestPersistedLayout(t *testing.T) {
	mem := kv.NewMemory()
	s := newTestStore(t, mem, WithClock(fixedClock(1000)))
	n, _ := s.Create()
	require.NoError(t, s.Update(n.ID, FieldContent, "x = \"1\"\n"))

	blob, ok, err := mem.Get("notes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1000,"title":"Untitled","content":"x = \"1\"\n","language":"plaintext"}]`, string(blob))
}

func ids(ns []Note) []int64 {
	out := make([]int64, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}
