package inventory

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError through errors.Is.
var ErrNotFound = errors.New("not found")

// ErrInvalidSnapshot is returned by Restore when a snapshot is inconsistent.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// NotFoundError reports an operation that referenced an unknown box or item.
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func boxNotFound(id BoxID) error {
	return &NotFoundError{Kind: "box", ID: uint(id)}
}

func itemNotFound(id ItemID) error {
	return &NotFoundError{Kind: "item", ID: uint(id)}
}
