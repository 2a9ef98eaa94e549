package protocols

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/internal/irtest"
	"github.com/sparques/irremote/ppm"
)

func TestDefaultDecodesEveryEncoder(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name    string
		address uint16
		command uint16
		proto   irremote.Protocol
	}{
		{"nec", 0x04, 0x08, irremote.NEC},
		{"samsung", 0x0707, 0x02, irremote.Samsung},
		{"panasonic", 0x0B4, 0x12, irremote.Panasonic},
		{"kaseikyo_denon", 0x321, 0x34, irremote.KaseikyoDenon},
		{"kaseikyo_sharp", 0x001, 0x02, irremote.KaseikyoSharp},
		{"kaseikyo_jvc", 0x010, 0x20, irremote.KaseikyoJVC},
		{"kaseikyo_mitsubishi", 0x100, 0x40, irremote.KaseikyoMitsubishi},
		{"sony", 0x01, 0x15, irremote.Sony},
		{"sony", 0xA4, 0x33, irremote.Sony},
		{"sony", 0x1ABC, 0x7F, irremote.Sony},
		{"rc5", 0x05, 0x35, irremote.RC5},
		{"denon", 0x08, 0xA5, irremote.Denon},
		{"hexbug", 0x01, 0x05, irremote.Hexbug},
		{"cheapo", 0, 0x2A, irremote.Cheapo},
	}
	r := irtest.Receiver(c, Default()...)
	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			pairs, err := Encode(tt.name, tt.address, tt.command)
			c.Assert(err, qt.IsNil)
			res := irtest.Decode(c, r, 200*time.Millisecond, pairs)
			c.Assert(res.Protocol, qt.Equals, tt.proto)
			c.Assert(res.Address, qt.Equals, tt.address)
			c.Assert(res.Command, qt.Equals, tt.command)
			c.Assert(res.IsRepeat(), qt.IsFalse)
		})
	}
}

func TestDefaultFallsBackToUnknown(t *testing.T) {
	c := qt.New(t)
	r := irtest.Receiver(c, Default()...)
	res := irtest.Decode(c, r, 0, []irremote.TimePair{irremote.Pair(6000, 1000), irremote.Pair(1000, 0)})
	c.Assert(res.Protocol, qt.Equals, irremote.Unknown)
	c.Assert(res.Err, qt.ErrorIs, irremote.ErrUnknownProtocol)
}

func TestWithPPM(t *testing.T) {
	c := qt.New(t)
	p := ppm.NewDecoder()
	decoders := WithPPM(p)
	c.Assert(decoders, qt.HasLen, len(Default())+1)

	r := irtest.Receiver(c, decoders...)
	fr := ppm.Frame{1200 * time.Microsecond, 1800 * time.Microsecond, 1500 * time.Microsecond, 1100 * time.Microsecond}
	res := irtest.Decode(c, r, 0, fr.MarshalFrame())
	c.Assert(res.Protocol, qt.Equals, irremote.PPM)
	c.Assert(p.Channel(1), qt.Equals, 1800*time.Microsecond)
}

func TestEncodeUnknownName(t *testing.T) {
	c := qt.New(t)
	_, err := Encode("bogus", 0, 0)
	c.Assert(err, qt.ErrorIs, irremote.ErrUnknownProtocol)
	c.Assert(Names(), qt.Contains, "nec")
	c.Assert(Names(), qt.Contains, "rc5")
}
