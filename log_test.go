package option

import (
	"fmt"
	"strings"
	"testing"

	"github.com/anacrolix/log"
	"github.com/davecgh/go-spew/spew"
	qt "github.com/go-quicktest/qt"
)

func TestLogReachesLogger(t *testing.T) {
	var msgs []string
	orig := Logger
	defer func() { Logger = orig }()
	Logger = orig.WithText(func(m log.Msg) string {
		s := fmt.Sprintf("%v", m)
		msgs = append(msgs, s)
		return s
	})
	Some(3).Log()
	None[int]().Log()
	qt.Assert(t, qt.HasLen(msgs, 2))
	qt.Check(t, qt.IsTrue(strings.Contains(msgs[0], "Some(3)")))
	qt.Check(t, qt.IsTrue(strings.Contains(msgs[1], "None")))
}

func TestLogDoesNotDisturbValue(t *testing.T) {
	o := Some(3)
	o.Log()
	None[int]().Log()
	qt.Check(t, qt.Equals(o, Some(3)))
}

func TestLogAndContinueMidChain(t *testing.T) {
	o := Map(Some(3).LogAndContinue(), func(v int) int { return v * 2 })
	qt.Check(t, qt.Equals(o, Some(6)))
	qt.Check(t, qt.Equals(None[int]().LogAndContinue(), None[int]()))
}

func TestLogCustomFormatter(t *testing.T) {
	var got string
	Some(3).Log(func(o T[int]) string {
		got = spew.Sdump(o)
		return got
	})
	qt.Assert(t, qt.Not(qt.Equals(got, "")))
	qt.Check(t, qt.IsTrue(strings.Contains(got, "3")))
}
