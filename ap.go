package option

import (
	"github.com/anacrolix/option/internal/panicif"
)

// Ap applies the function held in f to the value held in a. Absence on
// either side gives None.
func Ap[A, B any](f T[func(A) B], a T[A]) T[B] {
	if !f.ok {
		return None[B]()
	}
	return Map(a, f.value)
}

// ApAny is Ap over dynamically typed payloads, as built by LiftN. The
// payload of f must be a func(any) any; a non-function payload, like an
// absent f or a, gives None.
func ApAny(f, a T[any]) T[any] {
	if !f.ok {
		return None[any]()
	}
	fn, ok := f.value.(func(any) any)
	if !ok {
		return None[any]()
	}
	return Map(a, fn)
}

// Lift adapts an ordinary function to one operating over Option-wrapped
// arguments.
func Lift[A, B any](f func(A) B) func(T[A]) T[B] {
	return func(o T[A]) T[B] {
		return Map(o, f)
	}
}

// FlatLift is Lift for functions that already return an Option.
func FlatLift[A, B any](f func(A) T[B]) func(T[A]) T[B] {
	return func(o T[A]) T[B] {
		return FlatMap(o, f)
	}
}

// Lift2 applies a curried two-argument function across two Options.
func Lift2[A, B, C any](f func(A) func(B) C, a T[A], b T[B]) T[C] {
	return Ap(Map(a, f), b)
}

// Lift3 applies a curried three-argument function across three Options.
func Lift3[A, B, C, D any](
	f func(A) func(B) func(C) D,
	a T[A],
	b T[B],
	c T[C],
) T[D] {
	return Ap(Ap(Map(a, f), b), c)
}

// LiftN applies a fully curried function across N Options, left to right. f
// must be a chain of func(any) any links, one per argument; what the last
// link returns becomes the payload of the result. The accumulator seeds
// with f gated on the first argument's presence, then each ApAny step
// consumes one curried link and one Option. An absent argument anywhere
// makes the result None: the fold still runs to the end, every step past
// the absence yielding None immediately. A chain shorter or longer than the
// argument count is a caller defect that goes undetected; the only checked
// constraint is N >= 1.
func LiftN(f func(any) any, opts ...T[any]) T[any] {
	panicif.Zero(len(opts))
	acc := Map(opts[0], func(_ any) any { return f })
	for _, o := range opts {
		acc = ApAny(acc, o)
	}
	return acc
}
