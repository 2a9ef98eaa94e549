package denon

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/internal/irtest"
)

func TestRaw(t *testing.T) {
	c := qt.New(t)
	c.Assert(Frame{Address: 0x08, Command: 0xA5}.Raw(), qt.Equals, uint64(0x2294))
	c.Assert(Frame{Address: 0x08, Command: 0xA5, Inverted: true}.Raw(), qt.Equals, uint64(0x216B))
}

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)
	for _, fr := range []Frame{
		{Address: 0x08, Command: 0xA5},
		{Address: 0x1F, Command: 0x00},
		{Address: 0x00, Command: 0xFF},
	} {
		pairs := fr.MarshalFrame()
		c.Assert(pairs, qt.HasLen, Bits+1)
		res := irtest.DecodeOnce(c, NewDecoder(), pairs)
		c.Assert(res.Protocol, qt.Equals, irremote.Denon)
		c.Assert(res.Address, qt.Equals, uint16(fr.Address))
		c.Assert(res.Command, qt.Equals, uint16(fr.Command))
		c.Assert(res.Flags, qt.Equals, irremote.FlagMSBFirst)
	}
}

func TestAutoRepeatFrame(t *testing.T) {
	c := qt.New(t)
	r := irtest.Receiver(c, NewDecoder())
	fr := Frame{Address: 0x03, Command: 0x42}

	first := irtest.Decode(c, r, 0, fr.MarshalFrame())
	c.Assert(first.IsAutoRepeat(), qt.IsFalse)

	fr.Inverted = true
	second := irtest.Decode(c, r, 40*time.Millisecond, fr.MarshalFrame())
	c.Assert(second.Protocol, qt.Equals, irremote.Denon)
	c.Assert(second.IsAutoRepeat(), qt.IsTrue)
	c.Assert(second.IsRepeat(), qt.IsFalse)
	c.Assert(second.Address, qt.Equals, uint16(0x03))
	c.Assert(second.Command, qt.Equals, uint16(0x42))
}

func TestMarshalPress(t *testing.T) {
	c := qt.New(t)
	pairs := Frame{Address: 1, Command: 2}.MarshalPress()
	c.Assert(pairs, qt.HasLen, 2*(Bits+1))
	c.Assert(pairs[Bits][1], qt.Equals, AutoRepeatSpace*time.Microsecond)
	c.Assert(pairs[len(pairs)-1][1], qt.Equals, time.Duration(0))
}

func TestRejectsHeaderFrames(t *testing.T) {
	c := qt.New(t)
	pairs := append([]irremote.TimePair{irremote.Pair(9000, 4500)}, Frame{Command: 1}.MarshalFrame()...)
	res := irtest.DecodeOnce(c, NewDecoder(), pairs)
	c.Assert(res.Protocol, qt.Equals, irremote.Unknown)
}
