package nec

import (
	"fmt"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/internal/irtest"
)

// codes pairs transmitted NEC codes with the address and command they carry.
var codes = []struct {
	raw     uint32
	address uint16
	command byte
}{
	// 8 bit addresses, high byte is ^low
	{0xFF00FF00, 0x0000, 0x00},
	{0x00FFFF00, 0x0000, 0xFF},
	{0xFF0000FF, 0x00FF, 0x00},
	{0x00FF00FF, 0x00FF, 0xFF},
	{0xFF00DF20, 0x0020, 0x00},
	{0xFF0020DF, 0x00DF, 0x00},
	{0xDF20FF00, 0x0000, 0x20},
	{0x20DFFF00, 0x0000, 0xDF},
	// extended 16 bit addresses
	{0xFF000100, 0x0100, 0x00},
	{0xFF00FE00, 0xFE00, 0x00},
	{0xFF00F00D, 0xF00D, 0x00},
}

func TestSplitRaw(t *testing.T) {
	c := qt.New(t)
	for _, tt := range codes {
		c.Run(fmt.Sprintf("%08x", tt.raw), func(c *qt.C) {
			ok, address, command := SplitRaw(tt.raw)
			c.Assert(ok, qt.IsTrue)
			c.Assert(address, qt.Equals, tt.address)
			c.Assert(command, qt.Equals, tt.command)
		})
	}
}

func TestMakeRaw(t *testing.T) {
	c := qt.New(t)
	for _, tt := range codes {
		c.Run(fmt.Sprintf("%04x/%02x", tt.address, tt.command), func(c *qt.C) {
			c.Assert(MakeRaw(tt.address, tt.command), qt.Equals, tt.raw)
		})
	}
}

func TestSplitRawRejectsBadComplement(t *testing.T) {
	c := qt.New(t)
	const good = 0x00FFFF00
	// flip each bit of the command and of its complement in turn
	for bit := 16; bit < 32; bit++ {
		ok, _, _ := SplitRaw(good ^ 1<<bit)
		c.Assert(ok, qt.IsFalse, qt.Commentf("bit %d", bit))
	}
}

func TestDecodeCodes(t *testing.T) {
	c := qt.New(t)
	for _, tt := range codes {
		c.Run(fmt.Sprintf("%08x", tt.raw), func(c *qt.C) {
			res := irtest.DecodeOnce(c, NewDecoder(), Frame{Address: tt.address, Command: tt.command}.MarshalFrame())
			c.Assert(res.Protocol, qt.Equals, irremote.NEC)
			c.Assert(res.Address, qt.Equals, tt.address)
			c.Assert(res.Command, qt.Equals, uint16(tt.command))
			c.Assert(res.Raw, qt.Equals, uint64(tt.raw))
			c.Assert(res.Bits, qt.Equals, uint8(Bits))
			c.Assert(res.Flags, qt.Equals, irremote.Flags(0))
		})
	}
}

func TestDecodeParityFailed(t *testing.T) {
	c := qt.New(t)
	pairs := Timing.Encode(nil, 0x01FFFF00, Bits)
	res := irtest.DecodeOnce(c, NewDecoder(), pairs)
	c.Assert(res.Protocol, qt.Equals, irremote.NEC)
	c.Assert(res.ParityFailed(), qt.IsTrue)
	c.Assert(res.Command, qt.Equals, uint16(0xFF))
}

func TestDecodeRepeatFrame(t *testing.T) {
	c := qt.New(t)
	r := irtest.Receiver(c, NewDecoder())

	first := irtest.Decode(c, r, 0, Frame{Address: 0x04, Command: 0x08}.MarshalFrame())
	c.Assert(first.IsRepeat(), qt.IsFalse)

	rep := irtest.Decode(c, r, 40*time.Millisecond, Repeat{}.MarshalFrame())
	c.Assert(rep.Protocol, qt.Equals, irremote.NEC)
	c.Assert(rep.IsRepeat(), qt.IsTrue)
	c.Assert(rep.Address, qt.Equals, uint16(0x04))
	c.Assert(rep.Command, qt.Equals, uint16(0x08))

	// a full frame shortly after the previous one is a repeat too
	again := irtest.Decode(c, r, 30*time.Millisecond, Frame{Address: 0x04, Command: 0x08}.MarshalFrame())
	c.Assert(again.IsRepeat(), qt.IsTrue)
}

func TestDecodeRejectsOtherFrames(t *testing.T) {
	c := qt.New(t)
	r := irtest.Receiver(c, NewDecoder())

	res := irtest.Decode(c, r, 0, []irremote.TimePair{irremote.Pair(4500, 4500), irremote.Pair(560, 0)})
	c.Assert(res.Protocol, qt.Equals, irremote.Unknown)

	truncated := Frame{Address: 1, Command: 2}.MarshalFrame()[:20]
	res = irtest.Decode(c, r, 0, truncated)
	c.Assert(res.Protocol, qt.Equals, irremote.Unknown)
	c.Assert(res.Err, qt.ErrorIs, irremote.ErrUnknownProtocol)
}
