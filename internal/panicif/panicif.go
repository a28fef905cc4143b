package panicif

import "fmt"

func Zero[T comparable](t T) {
	var zero T
	if t == zero {
		panic(fmt.Sprintf("unexpected zero %T", t))
	}
}
