package repositories

import "errors"

// ErrNotFound is the sentinel for id-lookup misses. Implementations wrap it
// with the entity and id; callers match with errors.Is.
var ErrNotFound = errors.New("record not found")
