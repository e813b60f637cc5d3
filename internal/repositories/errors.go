package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a lookup misses, so
// callers can distinguish absence from a backend failure with errors.Is
// instead of matching message strings.
var ErrNotFound = errors.New("not found")
