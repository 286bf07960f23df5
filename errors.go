package settle

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrHookPanicked is reported by the returned future when an OnSuccess or OnFailure hook panics.
	ErrHookPanicked = errors.New("settle hook panicked")
	// ErrFailureType is reported by the returned future when the failure cannot be stored in the error slot type.
	ErrFailureType = errors.New("settle failure type mismatch")
)

// HookPanicError carries the value a hook panicked with.
type HookPanicError struct {
	Hook  string
	Value any
}

func (e *HookPanicError) Error() string {
	return fmt.Sprintf("settle: %s hook panicked: %v", e.Hook, e.Value)
}

func (e *HookPanicError) Unwrap() error {
	return ErrHookPanicked
}

// FailureTypeError is returned when a failure is not assignable to the requested error slot type.
// It matches both ErrFailureType and the original failure with errors.Is.
type FailureTypeError struct {
	Want reflect.Type
	Err  error
}

func (e *FailureTypeError) Error() string {
	return fmt.Sprintf("settle: failure %T is not assignable to %s: %v", e.Err, e.Want, e.Err)
}

func (e *FailureTypeError) Unwrap() []error {
	return []error{ErrFailureType, e.Err}
}
