package core

import (
	"errors"
	"fmt"
)

// ErrGridSaturated is returned by the spawner when every cell is taken by the body.
var ErrGridSaturated = errors.New("grid saturated: no free cell for food")

// StoreError reports a failed top score persistence operation.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("top score %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
