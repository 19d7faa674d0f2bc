// Package store persists saved designs as an ordered list of opaque
// serialized strings, addressed only by position.
package store

import (
	"context"
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when a position does not name a saved
// design.
var ErrIndexOutOfRange = errors.New("saved design index out of range")

// Store is the saved-design list.
type Store interface {
	List(ctx context.Context) ([]string, error)
	Append(ctx context.Context, serialized string) error
	Remove(ctx context.Context, index int) error
}

func outOfRange(index, n int) error {
	return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, n)
}
