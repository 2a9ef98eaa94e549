// Package denon implements the Denon (and Sharp) 15 bit protocol. Frames
// have no header: 5 address bits, 8 command bits and 2 frame bits, MSB
// first, then a stop bit. Every key press is followed by a second copy with
// command and frame bits inverted.
package denon

import (
	"time"

	"github.com/sparques/irremote"
)

const (
	ModulationFrequency = irremote.Freq38Khz

	Unit      = 260
	BitMark   = Unit
	OneSpace  = 7 * Unit
	ZeroSpace = 3 * Unit

	AddressBits = 5
	CommandBits = 8
	FrameBits   = 2
	Bits        = AddressBits + CommandBits + FrameBits

	// AutoRepeatSpace is the space between a frame and its inverted copy.
	AutoRepeatSpace = 45_000
	RepeatPeriod    = 110_000
	RepeatDist      = RepeatPeriod - AutoRepeatSpace

	invertedFrame = 0b11
)

// Timing describes a Denon frame.
var Timing = irremote.PulseDistanceWidth{
	OneMark:        BitMark,
	OneSpace:       OneSpace,
	ZeroMark:       BitMark,
	ZeroSpace:      ZeroSpace,
	Order:          irremote.MSBFirst,
	StopBit:        true,
	RepeatDistance: RepeatDist,
}

// Frame is a Denon command. Inverted selects the second, inverted copy.
type Frame struct {
	Address  uint8
	Command  uint8
	Inverted bool
}

// Raw returns the 15 bit code.
func (f Frame) Raw() uint64 {
	cmd, fb := f.Command, uint8(0)
	if f.Inverted {
		cmd, fb = ^cmd, invertedFrame
	}
	return uint64(f.Address&0x1F)<<(CommandBits+FrameBits) | uint64(cmd)<<FrameBits | uint64(fb)
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.TimePair {
	return Timing.Encode(make([]irremote.TimePair, 0, Bits+1), f.Raw(), Bits)
}

// MarshalPress returns the frame, the auto repeat space and the inverted
// copy, as sent for one key press.
func (f Frame) MarshalPress() []irremote.TimePair {
	f.Inverted = false
	pairs := f.MarshalFrame()
	pairs[len(pairs)-1][1] = AutoRepeatSpace * time.Microsecond
	f.Inverted = true
	return append(pairs, f.MarshalFrame()...)
}

// Decoder decodes Denon frames. The inverted copy is reported with
// FlagAutoRepeat and the original command.
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
	r.Protocol = irremote.Denon
	r.Address = uint16(raw>>(CommandBits+FrameBits)) & 0x1F
	cmd := uint8(raw >> FrameBits)
	r.Raw = raw
	r.Bits = Bits
	r.Flags |= irremote.FlagMSBFirst
	if raw&0b11 == invertedFrame {
		cmd = ^cmd
		r.Flags |= irremote.FlagAutoRepeat
	} else if f.IsRepeatGap(RepeatDist) {
		r.Flags |= irremote.FlagRepeat
	}
	r.Command = uint16(cmd)
	return nil
}
