package option

import (
	"iter"
)

// Iter yields the contained value once, or nothing at all.
func (me T[V]) Iter() iter.Seq[V] {
	return func(yield func(V) bool) {
		if me.ok {
			yield(me.value)
		}
	}
}

// ToSlice returns a single-element slice of the contained value, or an
// empty slice.
func ToSlice[V any](o T[V]) []V {
	if !o.ok {
		return nil
	}
	return []V{o.value}
}

// ToSet returns a single-element set of the contained value, or an empty
// set.
func ToSet[V comparable](o T[V]) map[V]struct{} {
	set := make(map[V]struct{}, 1)
	if o.ok {
		set[o.value] = struct{}{}
	}
	return set
}

// FirstInSeq returns Some of the first item in seq, or None if the sequence
// is empty.
func FirstInSeq[V any](seq iter.Seq[V]) T[V] {
	for item := range seq {
		return Some(item)
	}
	return None[V]()
}

// LastInSeq returns Some of the last item in seq, or None if the sequence
// is empty.
func LastInSeq[V any](seq iter.Seq[V]) (last T[V]) {
	for item := range seq {
		last = Some(item)
	}
	return
}
