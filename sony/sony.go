// Package sony implements the Sony SIRC protocol: a 2.4 ms header followed
// by 12, 15 or 20 pulse width coded bits, LSB first. The first 7 bits are the
// command, the rest the address. SIRC is modulated at 40 kHz.
package sony

import "github.com/sparques/irremote"

const (
	ModulationFrequency = irremote.Freq40Khz

	Unit        = 600
	HeaderMark  = 4 * Unit
	HeaderSpace = Unit
	OneMark     = 2 * Unit
	ZeroMark    = Unit
	Space       = Unit

	CommandBits = 7
	Bits12      = 12
	Bits15      = 15
	Bits20      = 20

	RepeatPeriod = 45_000
	minDuration  = 21_000
	RepeatDist   = RepeatPeriod - minDuration
)

// Timing describes a SIRC frame. There is no stop bit; the space after the
// last data mark is the inter-frame gap.
var Timing = irremote.PulseDistanceWidth{
	HeaderMark:     HeaderMark,
	HeaderSpace:    HeaderSpace,
	OneMark:        OneMark,
	OneSpace:       Space,
	ZeroMark:       ZeroMark,
	ZeroSpace:      Space,
	Order:          irremote.LSBFirst,
	RepeatDistance: RepeatDist,
}

// Frame is a SIRC command. Bits selects the 12, 15 or 20 bit variant; zero
// means 12.
type Frame struct {
	Address uint16
	Command uint8
	Bits    int
}

func (f Frame) bits() int {
	if f.Bits == 0 {
		return Bits12
	}
	return f.Bits
}

// Raw returns the code in transmission order.
func (f Frame) Raw() uint64 {
	addrBits := f.bits() - CommandBits
	addr := uint64(f.Address) & (1<<addrBits - 1)
	return addr<<CommandBits | uint64(f.Command&0x7F)
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.TimePair {
	return Timing.Encode(make([]irremote.TimePair, 0, f.bits()+1), f.Raw(), f.bits())
}

// Decoder decodes all three SIRC lengths.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements irremote.Decoder.
func (d *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	var bits int
	switch f.Len() {
	case Timing.Entries(Bits12):
		bits = Bits12
	case Timing.Entries(Bits15):
		bits = Bits15
	case Timing.Entries(Bits20):
		bits = Bits20
	default:
		return irremote.ErrLength
	}
	raw, err := Timing.Decode(f, bits)
	if err != nil {
		return err
	}
	r.Protocol = irremote.Sony
	r.Command = uint16(raw & 0x7F)
	r.Address = uint16(raw >> CommandBits)
	r.Raw = raw
	r.Bits = uint8(bits)
	if f.IsRepeatGap(RepeatDist) {
		r.Flags |= irremote.FlagRepeat
	}
	return nil
}
