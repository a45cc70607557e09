package store

import "errors"

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("store: key not found")

// ErrCorrupt wraps deserialization failures: the blob exists but does not
// parse into the expected shape. Callers treat the affected collection as
// empty rather than crashing the session, and surface the corruption.
var ErrCorrupt = errors.New("store: stored value is corrupt")

// Store is the key-value persistence collaborator. The pipeline's entire
// durable state lives behind three logical keys per user (account/quota,
// lead collection, activity feed); the core serializes its own entities and
// treats a missing key as empty/default.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, val []byte) error
	Delete(key string) error
	Close() error
}
