package results

import "fmt"

// Tuple is the ordered (error, value) pair an asynchronous computation settles to.
// Exactly one slot is present.  Presence is tracked apart from the slot contents, so a
// zero, empty, false or nil value is still a present value and never reads as a failure.
//
// The zero Tuple is a success holding the zero value of V.
type Tuple[E any, V any] struct {
	err    E
	val    V
	failed bool
}

// Failed returns a Tuple whose error slot holds err.
func Failed[E any, V any](err E) Tuple[E, V] {
	return Tuple[E, V]{err: err, failed: true}
}

// Succeeded returns a Tuple whose value slot holds val.
func Succeeded[E any, V any](val V) Tuple[E, V] {
	return Tuple[E, V]{val: val}
}

// Err returns the error slot and whether it is present.
func (t Tuple[E, V]) Err() (E, bool) {
	if !t.failed {
		return *new(E), false
	}
	return t.err, true
}

// Val returns the value slot and whether it is present.
func (t Tuple[E, V]) Val() (V, bool) {
	if t.failed {
		return *new(V), false
	}
	return t.val, true
}

// Ok reports whether the value slot is the present one.
func (t Tuple[E, V]) Ok() bool {
	return !t.failed
}

// Unpack returns both slots.  The absent slot holds its type's zero value, use Ok to tell them apart.
func (t Tuple[E, V]) Unpack() (E, V) {
	return t.err, t.val
}

func (t Tuple[E, V]) String() string {
	if t.failed {
		return fmt.Sprintf("(%v, <absent>)", t.err)
	}
	return fmt.Sprintf("(<absent>, %v)", t.val)
}
