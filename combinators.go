package option

import (
	"fmt"
)

// Map transforms the contained value with f, if any. f should not itself
// return an Option, that would nest one inside another: use FlatMap or Then
// for Option-returning functions.
func Map[A, B any](o T[A], f func(A) B) T[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

// FlatMap chains f over the contained value. f already returns an Option
// and its result passes through unwrapped, so there is no double-wrapping.
func FlatMap[A, B any](o T[A], f func(A) T[B]) T[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// Then unifies Map and FlatMap: a result that is already an Option passes
// through without nesting, any other result is wrapped with Some. Callers
// that don't want to track whether f wraps its result reach for this one.
// The Option check precedes the plain-B check so it holds even at B = any,
// where everything asserts to B. f returning something that is neither a B
// nor an Option of one is a defect in f and panics.
func Then[A, B any](o T[A], f func(A) any) T[B] {
	if !o.ok {
		return None[B]()
	}
	r := f(o.value)
	if wrapped, ok := r.(T[B]); ok {
		return wrapped
	}
	if inner, ok := r.(anyOption); ok {
		v, innerOk := inner.anyGet()
		if !innerOk {
			return None[B]()
		}
		if plain, ok := v.(B); ok {
			return Some(plain)
		}
		panic(fmt.Sprintf("option: Then func returned Option of %T", v))
	}
	if plain, ok := r.(B); ok {
		return Some(plain)
	}
	panic(fmt.Sprintf("option: Then func returned %T", r))
}

// OrElse returns the receiver if present, else alt.
func (me T[V]) OrElse(alt T[V]) T[V] {
	if me.ok {
		return me
	}
	return alt
}

// OrElseF is OrElse with the alternative computed only when needed.
func (me T[V]) OrElseF(alt func() T[V]) T[V] {
	if me.ok {
		return me
	}
	return alt()
}

// Flatten collapses one level of nesting.
func Flatten[V any](o T[T[V]]) T[V] {
	if !o.ok {
		return None[V]()
	}
	return o.value
}

// anyOption is implemented by every instantiation of T. It lets the
// dynamic combinators recognize wrapped values whatever the payload type.
type anyOption interface {
	anyGet() (any, bool)
}

func (me T[V]) anyGet() (any, bool) {
	return me.value, me.ok
}

// FlattenAny collapses one level of nesting when the payload type isn't
// statically known. A payload that is itself an Option, of any payload
// type, is unwrapped one level; any other payload leaves the receiver
// unchanged. The result is always an Option, safe to keep chaining on.
func FlattenAny(o T[any]) T[any] {
	if !o.ok {
		return None[any]()
	}
	if inner, ok := o.value.(anyOption); ok {
		return FromTuple(inner.anyGet())
	}
	return o
}

// Filter returns the receiver if present and pred holds, else None.
func (me T[V]) Filter(pred func(V) bool) T[V] {
	if me.ok && pred(me.value) {
		return me
	}
	return None[V]()
}

// FilterNot is the exact complement of Filter.
func (me T[V]) FilterNot(pred func(V) bool) T[V] {
	if me.ok && !pred(me.value) {
		return me
	}
	return None[V]()
}

// Fold transforms the contained value with f and extracts the result in one
// step, returning def when absent. Pass the zero value of B as def when
// there is no meaningful default.
func Fold[A, B any](o T[A], f func(A) B, def B) B {
	if !o.ok {
		return def
	}
	return f(o.value)
}
