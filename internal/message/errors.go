package message

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrValidation = errors.New("validation failed")
	ErrState      = errors.New("invalid builder state")
)

// ValidationError reports a missing or blank argument, an invalid URL or an
// invalid timestamp.
type ValidationError struct {
	Op  string
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StateError reports an operation that needs a preceding AddAttachment or
// AddAction.
type StateError struct {
	Op  string
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *StateError) Is(target error) bool { return target == ErrState }
