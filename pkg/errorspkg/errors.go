// Package errorspkg provides common app errors.
package errorspkg

import (
	"errors"
	"fmt"
)

// ErrOperationFailed indicates that the storage layer failed while an operation was in flight.
var ErrOperationFailed = errors.New("operation failed")

// OperationError carries the storage fault that aborted an operation.
type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrOperationFailed, e.Err)
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrOperationFailed) hold.
func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

// OperationFailed wraps err into an OperationError for the named operation.
func OperationFailed(op string, err error) error {
	return &OperationError{Op: op, Err: err}
}
