// Package futures provides an implementation of a Future which represents an asynchronous computation.
// A Future can be created and then passed around and read by multiple consumers.  This is the key difference
// between a Future and using a channel for an asynchronous computation as a channel value can only be read once.
package futures

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// Rejection is the error a Future fails with when it is rejected with a reason that is not an error,
// or when the function passed to FromFunc panics.  Reason holds the exact value that was provided.
type Rejection struct {
	Reason any
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("future rejected: %v", r.Reason)
}

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convience function.
// Once a future has been created it can be completed exactly once.  The first completion value
// wins and all other completions are silently ignored.
//
// The functions Complete, Cancel, Fail and Reject will all complete a future.
// Complete is used in the success case
// Fail is used for signaling that the Future failed with an error
// Reject is used for signaling that the Future failed with an arbitrary value
// Cancel is used to signal that the asynchronous computation was canceled
//
// Get is used to extract the value and an error from the Future.  If the future has not been
// completed calling Get will block until the future completes or until the context is canceled.
// Get can be called by multiple go routines simultaneously and they will all receive the same value.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	value T
	err   error
}

// New creates a new uncompleted Future that will eventually contain a value of type T which can be anything.
// This future must be manually completed by calling Complete, Fail, Reject or Cancel
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// NewWithContext creates a new uncompleted Future that is canceled when the provided context is done
// before the future has been completed.
func NewWithContext[T any](ctx context.Context) *Future[T] {
	f := New[T]()

	go func() {
		select {
		case <-ctx.Done():
			f.Cancel()
		case <-f.completed:
		}
	}()

	return f
}

// FromFunc creates a new uncompleted Future that will eventually contain the return value of the provided function.
// The provided function is run asynchronously when this function is invoked.  If the function panics the
// future is rejected with the panic value.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				f.Reject(r)
			}
		}()

		t, err := do()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(t)
	}()

	return f
}

// Complete completes this Future with the provided value.  If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.internalComplete(value, nil)
}

// Cancel completes this Future with the ErrCanceled error.  If the future has already been completed this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail completes this Future with the provided error.  If the future has already been completed this call is ignored.
// A nil error is treated as Reject(nil) so that a failed future always reports a non-nil error.
func (f *Future[T]) Fail(err error) {
	if err == nil {
		err = &Rejection{}
	}
	f.internalComplete(*new(T), err)
}

// Reject completes this Future with an arbitrary failure reason.  An error reason is used as is,
// any other value is wrapped in a *Rejection.  If the future has already been completed this call is ignored.
func (f *Future[T]) Reject(reason any) {
	if err, ok := reason.(error); ok && err != nil {
		f.Fail(err)
		return
	}
	f.Fail(&Rejection{Reason: reason})
}

func (f *Future[T]) internalComplete(val T, err error) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.value = val
		f.err = err
		close(f.completed)
	}
}

// Done returns a channel that is closed once this Future has been completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.completed
}

// Get retrieves the value of this Future.  If the future is not yet completed this call will block until the future is
// completed or until the provided context is canceled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.completed:
		return f.value, f.err
	case <-ctx.Done():
		return *new(T), ctx.Err()
	}
}
