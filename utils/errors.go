package utils

import "fmt"

// ValidationError rejects a user action without touching any state:
// party size out of range, date in the past, missing restaurant selection.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks an operation referencing a record absent from its
// store. Missing ids surface as this error, never as a silent no-op.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}
