package store

import (
	"errors"
	"fmt"
)

// ErrNoCollection is returned when an operation names a collection the
// current schema version does not declare.
var ErrNoCollection = errors.New("no such collection")

// ConflictError reports a unique index rejection on insert or replace.
type ConflictError struct {
	Collection string
	Index      string
	Value      string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"unique index %s on %s already has value %s", e.Index, e.Collection, e.Value)
}

func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
