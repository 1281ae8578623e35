package repositories

import "errors"

// Storage-level conditions services need to distinguish. GORM
// implementations translate driver errors into these; in-memory
// implementations return them directly.
var (
	// ErrNotFound is returned when no record matches the given key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	// It is the authoritative uniqueness signal; service-level pre-checks
	// only exist to produce friendlier errors in the common case.
	ErrDuplicate = errors.New("unique constraint violated")
)
