package catalogue

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every *NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError is returned when an operation needs an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("A %s with an id of %d was not found.", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func notFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}
