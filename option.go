// Package option provides a generic container for values that may be
// absent. Presence is a type-level tag rather than a sentinel payload, so
// wrapping zero values (0, "", false) works: only the nil pointer passed to
// FromPtr, or a false ok from FromTuple, means None.
package option

import (
	"fmt"
)

// Holds a single value of type V, or nothing. The zero value is None, so an
// Option field is absent until assigned. Instances are immutable: every
// combinator returns a new Option and never modifies its receiver, which
// also makes them safe to share between goroutines.
type T[V any] struct {
	value V
	ok    bool
}

// Some wraps v in a present Option.
func Some[V any](v V) T[V] {
	return T[V]{value: v, ok: true}
}

// None returns the absent Option for V.
func None[V any]() (none T[V]) {
	return
}

// FromPtr converts a pointer to an Option, nil meaning None. A non-nil
// pointer to a zero value is still Some: absence is decided by the nil
// marker alone, never by falsiness or emptiness of the payload.
func FromPtr[V any](p *V) T[V] {
	if p == nil {
		return None[V]()
	}
	return Some(*p)
}

// FromTuple adapts the comma-ok idiom, as in FromTuple(m[key]) spelled out.
func FromTuple[V any](v V, ok bool) T[V] {
	if !ok {
		return None[V]()
	}
	return Some(v)
}

// IsSome reports whether a value is present.
func (me T[V]) IsSome() bool {
	return me.ok
}

// IsNone reports whether no value is present.
func (me T[V]) IsNone() bool {
	return !me.ok
}

// Exists is an alias for IsSome.
func (me T[V]) Exists() bool {
	return me.ok
}

// NonEmpty is an alias for IsSome.
func (me T[V]) NonEmpty() bool {
	return me.ok
}

// Get returns the contained value and whether one was present. Absence is
// an ordinary result here, never a failure.
func (me T[V]) Get() (V, bool) {
	return me.value, me.ok
}

// GetOrElse returns the contained value, or fallback if there isn't one.
func (me T[V]) GetOrElse(fallback V) V {
	if me.ok {
		return me.value
	}
	return fallback
}

// GetOrElseF is GetOrElse with the fallback computed only when needed.
func (me T[V]) GetOrElseF(fallback func() V) V {
	if me.ok {
		return me.value
	}
	return fallback()
}

// Unwrap returns the contained value, panicking on None. The combinators in
// this package never trigger this themselves: reaching the panic means the
// caller skipped a presence check and is a defect at the call site.
func (me T[V]) Unwrap() V {
	if !me.ok {
		panic("option: Unwrap of None")
	}
	return me.value
}

// UnwrapOr is an alias for GetOrElse.
func (me T[V]) UnwrapOr(fallback V) V {
	return me.GetOrElse(fallback)
}

// UnwrapOrZero returns the contained value, or the zero value of V.
func (me T[V]) UnwrapOrZero() (zero V) {
	if me.ok {
		return me.value
	}
	return
}

// ToPtr returns a pointer to a copy of the contained value, or nil. The
// copy keeps the Option itself immutable.
func (me T[V]) ToPtr() *V {
	if !me.ok {
		return nil
	}
	v := me.value
	return &v
}

// String renders "Some(<value>)" or "None".
func (me T[V]) String() string {
	if !me.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", me.value)
}
