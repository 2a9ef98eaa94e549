// Package nec implements the NEC protocol: a 9 ms header, 32 bits sent LSB
// first as { address low, address high, command, ^command } and a stop bit.
//
// References
// https://www.sbprojects.net/knowledge/ir/nec.php
// https://techdocs.altium.com/display/FPGA/NEC+Infrared+Transmission+Protocol
package nec

import "github.com/sparques/irremote"

const (
	// NEC Consumer IR is modulated at 38 kHz
	ModulationFrequency = irremote.Freq38Khz

	Unit         = 560       // µs
	HeaderMark   = Unit * 16 // 9 ms
	HeaderSpace  = Unit * 8  // 4.5 ms
	RepeatSpace  = Unit * 4  // 2.25 ms
	BitMark      = Unit      // 560 µs
	ZeroSpace    = Unit      // 560 µs
	OneSpace     = Unit * 3  // 1.68 ms
	RepeatPeriod = 110_000   // start to start of a held key
	repeatAvg    = 62_000    // average frame duration
	RepeatDist   = RepeatPeriod - repeatAvg

	Bits = 32
)

// Timing describes an NEC data frame.
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

// SplitRaw unpacks a 32 bit code as received. ok is false when the fourth
// byte is not the complement of the command.
func SplitRaw(raw uint32) (ok bool, address uint16, command byte) {
	b := [4]byte{byte(raw), byte(raw >> 8), byte(raw >> 16), byte(raw >> 24)}
	return b[3] == ^b[2], MakeAddress(b[0], b[1]), b[2]
}

// MakeRaw packs address and command into the code as transmitted.
func MakeRaw(address uint16, command byte) uint32 {
	lo, hi := SplitAddress(address)
	return uint32(lo) | uint32(hi)<<8 | uint32(command)<<16 | uint32(^command)<<24
}

// SplitAddress returns the two address bytes in transmission order.
// Addresses below 0x100 are plain NEC and send the complement of the low
// byte in place of the high one.
func SplitAddress(address uint16) (lo, hi byte) {
	lo, hi = byte(address), byte(address>>8)
	if hi == 0 {
		hi = ^lo
	}
	return lo, hi
}

// MakeAddress reverses SplitAddress. Extended NEC cannot use a high byte
// equal to ^lo, so that pattern always reads as an 8 bit address.
func MakeAddress(lo, hi byte) uint16 {
	if hi == ^lo {
		return uint16(lo)
	}
	return uint16(hi)<<8 | uint16(lo)
}

// Frame is an NEC command.
type Frame struct {
	Address uint16
	Command byte
}

// Raw returns the 32 bit code in transmission order.
func (f Frame) Raw() uint32 {
	return MakeRaw(f.Address, f.Command)
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.TimePair {
	return Timing.Encode(make([]irremote.TimePair, 0, Bits+2), uint64(f.Raw()), Bits)
}

// Repeat is the short frame sent every RepeatPeriod while a key is held.
type Repeat struct{}

// MarshalFrame implements irremote.FrameMarshaller.
func (Repeat) MarshalFrame() []irremote.TimePair {
	return []irremote.TimePair{
		irremote.Pair(HeaderMark, RepeatSpace),
		irremote.Pair(BitMark, 0),
	}
}

// Decoder decodes NEC data and repeat frames.
type Decoder struct{}

// NewDecoder returns an NEC decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// repeat frame: gap, header mark, repeat space, stop mark, trailing space
const repeatEntries = 5

// Decode implements irremote.Decoder.
func (d *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	if f.Len() == repeatEntries {
		if !f.MatchMark(1, HeaderMark) || !f.MatchSpace(2, RepeatSpace) || !f.MatchMark(3, BitMark) {
			return irremote.ErrHeader
		}
		// a repeat frame carries no data; report the key it repeats
		if last := f.Last(); last.Protocol == irremote.NEC {
			r.Address, r.Command, r.Raw = last.Address, last.Command, last.Raw
		}
		r.Protocol = irremote.NEC
		r.Flags = irremote.FlagRepeat
		return nil
	}

	raw, err := Timing.Decode(f, Bits)
	if err != nil {
		return err
	}
	valid, address, command := SplitRaw(uint32(raw))
	r.Protocol = irremote.NEC
	r.Address = address
	r.Command = uint16(command)
	r.Raw = raw
	r.Bits = Bits
	if !valid {
		r.Flags |= irremote.FlagParityFailed
	}
	if f.IsRepeatGap(RepeatDist) {
		r.Flags |= irremote.FlagRepeat
	}
	return nil
}
