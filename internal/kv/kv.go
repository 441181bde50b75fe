// Package kv provides the synchronous, single-device key/value stores notes are
// persisted to.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/marcus/exnote/internal/config"
)

var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store is closed")

	// ErrUnknownBackend is returned by Open for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// Store gets and sets whole blobs by key.
type Store interface {
	// Get returns the blob stored under key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)

	// Set replaces the blob stored under key.
	Set(key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}

// Open creates the store selected by cfg. logger may be nil.
func Open(cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendFile:
		return OpenFile(cfg.Path, WithFileLogger(logger))
	case config.BackendSQLite, "":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return OpenSQLite(cfg.Path, cfg.Driver)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
