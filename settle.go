// Package settle converts the outcome of a futures.Future into an ordered (error, value) tuple.
//
// The returned future never fails because of the operation it waits on: a failure becomes the
// tuple's error slot and a success becomes its value slot.  Callers check which slot is present
// instead of branching on an error return:
//
//	tup, _ := settle.To[error](fetchUser(id)).Get(ctx)
//	if err, failed := tup.Err(); failed {
//		return err
//	}
//	user, _ := tup.Val()
//
// The returned future only fails when an observer hook panics (ErrHookPanicked), when the
// failure cannot be stored in the requested error slot type (ErrFailureType), or when the wait
// is cut short by WithContext or by canceling the returned future (futures.ErrCanceled).
package settle

import (
	"context"
	"reflect"

	"github.com/pkg/errors"

	"github.com/abevier/settle/futures"
	"github.com/abevier/settle/results"
)

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// To waits for f to settle and completes the returned future with a results.Tuple.
// E is the type of the error slot.  Use error to keep the exact error f failed with, or any to
// also unwrap the reason of a *futures.Rejection.  V is inferred from f:
//
//	settle.To[error](f)
//	settle.To[any](f, settle.OnFailure(alert))
func To[E any, V any](f *futures.Future[V], opts ...Option) *futures.Future[results.Tuple[E, V]] {
	o := newOpts(opts)
	out := futures.New[results.Tuple[E, V]]()

	go translate(f, out, o)

	return out
}

// Do is the blocking form of To.  The error is non-nil only when ctx ends first or the returned
// future of To fails.
func Do[E any, V any](ctx context.Context, f *futures.Future[V], opts ...Option) (results.Tuple[E, V], error) {
	opts = append([]Option{WithContext(ctx)}, opts...)
	return To[E](f, opts...).Get(ctx)
}

func translate[E any, V any](in *futures.Future[V], out *futures.Future[results.Tuple[E, V]], o Opts) {
	select {
	case <-in.Done():
	case <-out.Done():
		// canceled by the caller, stop waiting on the input
		o.Logger.Debug().Msg("settle wait abandoned")
		return
	case <-o.Context.Done():
		o.Logger.Debug().Err(o.Context.Err()).Msg("settle wait canceled")
		out.Cancel()
		return
	}

	// in is complete, Get does not block
	v, err := in.Get(context.Background())
	if err == nil {
		o.Logger.Debug().Bool("ok", true).Msg("operation settled")

		if hookErr := runHook("success", o.OnSuccess, o); hookErr != nil {
			out.Fail(hookErr)
			return
		}
		out.Complete(results.Succeeded[E](v))
		return
	}

	o.Logger.Debug().Bool("ok", false).Err(err).Msg("operation settled")

	e, ok := failureAs[E](err)
	if !ok {
		out.Fail(&FailureTypeError{Want: typeOf[E](), Err: err})
		return
	}

	if hookErr := runHook("failure", o.OnFailure, o); hookErr != nil {
		out.Fail(hookErr)
		return
	}
	out.Complete(results.Failed[E, V](e))
}

func runHook(name string, hook func(), o Opts) (err error) {
	if hook == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			o.Logger.Error().Str("hook", name).Interface("panic", r).Msg("settle hook panicked")
			err = errors.WithStack(&HookPanicError{Hook: name, Value: r})
		}
	}()

	hook()
	return nil
}

// failureAs stores err in the error slot type E.  A rejection reason is preferred over the
// rejection itself, then err, then the first error in its chain that is an E.
func failureAs[E any](err error) (E, bool) {
	t := typeOf[E]()

	var rej *futures.Rejection
	if errors.As(err, &rej) {
		if e, ok := rej.Reason.(E); ok {
			return e, true
		}
		if rej.Reason == nil && t.Kind() == reflect.Interface && t.NumMethod() == 0 {
			return *new(E), true
		}
	}

	if e, ok := any(err).(E); ok {
		return e, true
	}

	// errors.As panics unless the target is an interface or implements error
	if t.Kind() == reflect.Interface || t.Implements(errorType) {
		var target E
		if errors.As(err, &target) {
			return target, true
		}
	}

	return *new(E), false
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
