// Package cheapo decodes cheap, unknown brand IR remote controls. I have a
// stack of these things; they come with LED light strips.
// The button codes are usually in order, starting from zero and increasing, left to right, top to bottom.
//
// They use NEC style timing but only the first 10 bits after the header
// carry the button. The decoder ignores whatever follows, so register it
// after nec to catch the frames nec rejects.
package cheapo

import "github.com/sparques/irremote"

const (
	HeaderMark  = 9000
	HeaderSpace = 4500
	BitMark     = 560
	OneSpace    = 1690
	ZeroSpace   = 560
	Bits        = 10
)

// Timing describes the part of the frame the decoder reads.
var Timing = irremote.PulseDistanceWidth{
	HeaderMark:  HeaderMark,
	HeaderSpace: HeaderSpace,
	OneMark:     BitMark,
	OneSpace:    OneSpace,
	ZeroMark:    BitMark,
	ZeroSpace:   ZeroSpace,
	Order:       irremote.LSBFirst,
	StopBit:     true,
}

// Cmd is a button code.
type Cmd uint16

// MarshalFrame implements irremote.FrameMarshaller.
func (c Cmd) MarshalFrame() []irremote.TimePair {
	return Timing.Encode(make([]irremote.TimePair, 0, Bits+2), uint64(c), Bits)
}

// Decoder implements a permissive decoder for cheap, unknown brand IR remotes.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements irremote.Decoder. Only the header mark is checked; the
// frame length is not.
func (d *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	if !f.MatchMark(1, HeaderMark) {
		return irremote.ErrHeader
	}
	v, _, err := f.DecodePulseDistance(Timing.DataStart(), Bits, BitMark, OneSpace, ZeroSpace, irremote.LSBFirst)
	if err != nil {
		return err
	}
	r.Protocol = irremote.Cheapo
	r.Command = uint16(v)
	r.Raw = v
	r.Bits = Bits
	return nil
}
