package option

import (
	"github.com/google/go-cmp/cmp"
)

// Contains reports whether o holds a value equal to v, per cmp.Equal.
// Always false for None. Payload types that cmp.Equal can't compare, such
// as structs with unexported fields, need ContainsFunc and an equality of
// their own.
func Contains[V any](o T[V], v V) bool {
	return ContainsFunc(o, v, func(a, b V) bool { return cmp.Equal(a, b) })
}

// ContainsFunc is Contains with a caller-supplied equality.
func ContainsFunc[V any](o T[V], v V, eq func(a, b V) bool) bool {
	return o.ok && eq(o.value, v)
}

// Equal reports whether a and b are both None, or both Some of values equal
// per cmp.Equal.
func Equal[V any](a, b T[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return cmp.Equal(x, y) })
}

// EqualFunc is Equal with a caller-supplied equality on the payloads.
func EqualFunc[V any](a, b T[V], eq func(x, y V) bool) bool {
	if a.ok != b.ok {
		return false
	}
	if !a.ok {
		return true
	}
	return eq(a.value, b.value)
}
