package database

import (
	"errors"
	"fmt"
)

// ErrOperationFailed matches every error returned from a repository boundary
var ErrOperationFailed = errors.New("repository operation failed")

// Repository operations
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// OperationError reports a failed store operation. The underlying driver error is
// logged where it happens and deliberately not carried here.
type OperationError struct {
	Resource string
	Op       string
	// Conflict is set when the store rejected a write on a unique constraint.
	Conflict bool
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s repository: %s failed", e.Resource, e.Op)
}

// Is makes errors.Is(err, ErrOperationFailed) hold for every OperationError
func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

// IsConflict reports whether err is an OperationError caused by a unique constraint
func IsConflict(err error) bool {
	var opErr *OperationError
	return errors.As(err, &opErr) && opErr.Conflict
}
