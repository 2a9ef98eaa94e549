package irremote

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestFrameCopyMicros(t *testing.T) {
	c := qt.New(t)
	f := frameOf(c, Config{}, []TimePair{Pair(1000, 500), Pair(500, 0)})

	dst := make([]uint32, f.Len())
	n := f.CopyMicros(dst)
	c.Assert(n, qt.Equals, f.Len()-1)
	// marks lose the 20µs excess, spaces gain it; the trailing space is
	// 101 ticks of timeout plus one tick margin
	c.Assert(dst[:n], qt.DeepEquals, []uint32{980, 520, 480, 5120})

	short := make([]uint32, 2)
	c.Assert(f.CopyMicros(short), qt.Equals, 2)
	c.Assert(short, qt.DeepEquals, []uint32{980, 520})
}

func TestFrameCopyMicrosClampsShortMarks(t *testing.T) {
	c := qt.New(t)
	f := frameOf(c, Config{MarkExcess: 100 * time.Microsecond}, []TimePair{Pair(50, 500), Pair(500, 0)})

	dst := make([]uint32, 3)
	c.Assert(f.CopyMicros(dst), qt.Equals, 3)
	c.Assert(dst, qt.DeepEquals, []uint32{0, 600, 400})
}
