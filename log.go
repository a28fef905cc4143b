package option

import (
	"github.com/anacrolix/log"
)

// Logger receives the output of Log and LogAndContinue. Swap it to redirect
// or silence the package.
var Logger = log.Default.WithNames("option")

// Log writes the Option's string form to the package Logger. An optional
// custom formatter replaces the default String rendering.
func (me T[V]) Log(custom ...func(T[V]) string) {
	s := me.String()
	if len(custom) > 0 {
		s = custom[0](me)
	}
	Logger.Printf("%s", s)
}

// LogAndContinue is Log, but returns the receiver unchanged so it can sit
// in the middle of a combinator chain.
func (me T[V]) LogAndContinue(custom ...func(T[V]) string) T[V] {
	me.Log(custom...)
	return me
}
