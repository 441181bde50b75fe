package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

const tempFilePrefix = "exnote-tmp-"

// File is a Store kept in a single JSON object file, one string value per key.
// The whole file is rewritten on every Set.
type File struct {
	mu      sync.RWMutex
	path    string
	data    map[string]string
	lastSum uint64
	closed  bool
	logger  *zap.Logger
}

// FileOption configures a File.
type FileOption func(*File)

// WithFileLogger sets the logger used to report an unreadable store file.
func WithFileLogger(logger *zap.Logger) FileOption {
	return func(f *File) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// OpenFile loads the store at path. A missing file is an empty store. So is a
// file that does not parse; it is logged and left on disk until the next Set.
func OpenFile(path string, opts ...FileOption) (*File, error) {
	f := &File{
		path:   path,
		data:   make(map[string]string),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		f.logger.Warn("kv: store file unreadable, starting empty",
			zap.String("path", path), zap.Error(err), zap.Int("bytes", len(raw)))
		f.data = make(map[string]string)
		return f, nil
	}
	if f.data == nil {
		f.data = make(map[string]string)
	}
	f.lastSum = xxhash.Sum64(raw)
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Get returns the value stored under key.
func (f *File) Get(key string) ([]byte, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return nil, false, ErrClosed
	}
	v, ok := f.data[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Set stores value under key and rewrites the file. The disk write is
// skipped when the file body would be unchanged.
func (f *File) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	prev, had := f.data[key]
	f.data[key] = string(value)

	body, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		f.restore(key, prev, had)
		return fmt.Errorf("encode store file: %w", err)
	}

	sum := xxhash.Sum64(body)
	if sum == f.lastSum {
		return nil
	}
	if err := writeFileAtomic(f.path, body, 0644); err != nil {
		f.restore(key, prev, had)
		return err
	}
	f.lastSum = sum
	return nil
}

func (f *File) restore(key, prev string, had bool) {
	if had {
		f.data[key] = prev
	} else {
		delete(f.data, key)
	}
}

// Close marks the store closed. Data is already on disk.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// writeFileAtomic writes to a temp file in the same directory and renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", filename, err)
	}
	return nil
}
