// samsung implements an irremote.Decoder that can decode Samsung IR signals.
package samsung

import (
	"errors"

	"github.com/sparques/irremote"
)

const (
	Unit         = 560 // µs
	HeaderMark   = Unit * 8
	HeaderSpace  = Unit * 8
	BitMark      = Unit
	OneSpace     = Unit * 3
	ZeroSpace    = Unit
	Bits         = 32
	RepeatPeriod = 110_000
	// RepeatDist is the space between frames of a held key.
	RepeatDist = RepeatPeriod - 55_000
)

var (
	// ErrFrameAlloc is returned when an attempt to unmarshal to a nil Frame is done--the frame must be allocated ahead of time
	ErrFrameAlloc = errors.New("tried to unmarshal to unallocated frame")
)

// Timing describes a Samsung frame.
var Timing = irremote.PulseDistanceWidth{
	HeaderMark:     HeaderMark,
	HeaderSpace:    HeaderSpace,
	OneMark:        BitMark,
	OneSpace:       OneSpace,
	ZeroMark:       BitMark,
	ZeroSpace:      ZeroSpace,
	Order:          irremote.LSBFirst,
	StopBit:        true,
	RepeatDistance: RepeatDist,
}

type Frame struct {
	Addr uint16
	Cmd  uint16
}

// MarshalFrame encodes the frame. A Cmd below 0x100 is sent with its
// inverse in the upper byte.
func (f *Frame) MarshalFrame() []irremote.TimePair {
	cmd := f.Cmd
	if cmd <= 0xFF {
		cmd |= uint16(^byte(cmd)) << 8
	}
	buf := uint32(cmd)<<16 | uint32(f.Addr)
	return Timing.Encode(make([]irremote.TimePair, 0, Bits+2), uint64(buf), Bits)
}

// UnmarshalFrame splits the 32 bit code. A command whose upper byte is the
// inverse of the lower one is reduced to 8 bits.
func (f *Frame) UnmarshalFrame(buf uint32) error {
	if f == nil {
		return ErrFrameAlloc
	}
	f.Addr = uint16(buf & 0xFFFF)
	f.Cmd = uint16((buf >> 16) & 0xFFFF)
	if byte(f.Cmd>>8) == ^byte(f.Cmd) {
		f.Cmd &= 0xFF
	}
	return nil
}

type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements irremote.Decoder.
func (d *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	raw, err := Timing.Decode(f, Bits)
	if err != nil {
		return err
	}
	var fr Frame
	fr.UnmarshalFrame(uint32(raw))
	r.Protocol = irremote.Samsung
	r.Address = fr.Addr
	r.Command = fr.Cmd
	r.Raw = raw
	r.Bits = Bits
	if f.IsRepeatGap(RepeatDist) {
		r.Flags |= irremote.FlagRepeat
	}
	return nil
}
