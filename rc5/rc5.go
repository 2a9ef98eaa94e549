// Package rc5 implements the Philips RC5 biphase protocol: 14 bits MSB
// first of 889 µs half bits. A one is space then mark, a zero mark then
// space.
//
//	| S1 | S2 | T | A4..A0 | C5..C0 |
//
// S2 is the inverted command bit 6 (RC5X), T toggles on every new key press.
package rc5

import "github.com/sparques/irremote"

const (
	ModulationFrequency = irremote.Freq36Khz

	Unit         = 889
	Bits         = 14
	AddressBits  = 5
	CommandBits  = 6
	RepeatPeriod = 114_000
	duration     = Bits * 2 * Unit
	RepeatDist   = RepeatPeriod - duration

	startBit  = 1 << 13
	fieldBit  = 1 << 12
	toggleBit = 1 << 11
)

// Frame is an RC5 command. Command values from 0x40 use the RC5X field bit.
type Frame struct {
	Address uint8
	Command uint8
	Toggle  bool
}

// Raw returns the 14 bit code including the start bit.
func (f Frame) Raw() uint64 {
	raw := uint64(startBit) | uint64(f.Address&0x1F)<<CommandBits | uint64(f.Command&0x3F)
	if f.Command < 0x40 {
		raw |= fieldBit
	}
	if f.Toggle {
		raw |= toggleBit
	}
	return raw
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.TimePair {
	return irremote.EncodeBiphase(make([]irremote.TimePair, 0, Bits), f.Raw(), Bits, Unit, irremote.MSBFirst)
}

// Decoder decodes RC5 and RC5X frames.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements irremote.Decoder.
func (d *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	// shortest frame alternates every unit pair, longest never merges
	if f.Len() < 1+Bits || f.Len() > 2+2*Bits {
		return irremote.ErrLength
	}
	cur := f.Biphase(1, Unit)
	// the space half of the start bit is part of the gap
	if l, ok := cur.Level(); !ok || l != irremote.Mark {
		return irremote.ErrHeader
	}
	v, _, err := cur.Bits(Bits-1, irremote.MSBFirst)
	if err != nil {
		return err
	}
	if !cur.Done() {
		return irremote.ErrLength
	}
	raw := v | startBit

	r.Protocol = irremote.RC5
	r.Address = uint16(raw>>CommandBits) & 0x1F
	r.Command = uint16(raw & 0x3F)
	if raw&fieldBit == 0 {
		r.Command |= 0x40
	}
	r.Raw = raw
	r.Bits = Bits
	r.Flags |= irremote.FlagMSBFirst
	toggle := raw&toggleBit != 0
	if toggle {
		r.Flags |= irremote.FlagToggle
	}
	last := f.Last()
	if last.Protocol == irremote.RC5 && last.Toggle() == toggle && f.IsRepeatGap(RepeatDist) {
		r.Flags |= irremote.FlagRepeat
	}
	return nil
}
