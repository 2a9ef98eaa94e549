// Package kaseikyo implements the Kaseikyo (Japanese "Association for
// Electric Home Appliances") protocol used by Panasonic, Denon, Sharp, JVC
// and Mitsubishi.
//
// A frame is 48 bits LSB first: 16 bit vendor id, 4 bit vendor parity,
// 12 bit address, 8 bit command and 8 bit parity over the three bytes
// before it.
//
//	IRP: {37k,432}<1,-1|1,-3>(8,-4,V:16,X:4,D:4,S:8,F:8,(X^D^S^F):8,1,-173)+
package kaseikyo

import "github.com/sparques/irremote"

const (
	VendorIDBits     = 16
	VendorParityBits = 4
	AddressBits      = 12
	CommandBits      = 8
	ParityBits       = 8
	Bits             = VendorIDBits + VendorParityBits + AddressBits + CommandBits + ParityBits // 48

	Unit        = 432 // 16 periods of 37 kHz
	HeaderMark  = 8 * Unit
	HeaderSpace = 4 * Unit
	BitMark     = Unit
	OneSpace    = 3 * Unit
	ZeroSpace   = Unit

	averageDuration = 56_000
	RepeatPeriod    = 130_000
	RepeatDist      = RepeatPeriod - averageDuration // 74 ms
)

// Known vendor ids.
const (
	PanasonicVendor  = 0x2002
	DenonVendor      = 0x3254
	MitsubishiVendor = 0xCB23
	SharpVendor      = 0x5AAA
	JVCVendor        = 0x0103
)

// Timing describes a Kaseikyo frame.
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

// VendorParity folds the vendor id into 4 bits.
func VendorParity(vendor uint16) uint8 {
	p := uint8(vendor) ^ uint8(vendor>>8)
	return (p ^ p>>4) & 0xF
}

// Frame is a Kaseikyo command. Address is 12 bits and can be read as
// sub-device << 8 + device.
type Frame struct {
	Vendor  uint16
	Address uint16
	Command uint8
}

// Raw returns the 48 bit code in transmission order.
func (f Frame) Raw() uint64 {
	low := f.Address<<VendorParityBits | uint16(VendorParity(f.Vendor))
	parity := f.Command ^ uint8(low) ^ uint8(low>>8)
	value := uint32(parity)<<24 | uint32(f.Command)<<16 | uint32(low)
	return uint64(value)<<VendorIDBits | uint64(f.Vendor)
}

// MarshalFrame implements irremote.FrameMarshaller.
func (f Frame) MarshalFrame() []irremote.TimePair {
	return Timing.Encode(make([]irremote.TimePair, 0, Bits+2), f.Raw(), Bits)
}

// Panasonic returns a frame with the Panasonic vendor id.
func Panasonic(address uint16, command uint8) Frame {
	return Frame{Vendor: PanasonicVendor, Address: address, Command: command}
}

// ProtocolOf maps a vendor id to its protocol; unknown vendors are plain
// Kaseikyo.
func ProtocolOf(vendor uint16) irremote.Protocol {
	switch vendor {
	case PanasonicVendor:
		return irremote.Panasonic
	case SharpVendor:
		return irremote.KaseikyoSharp
	case DenonVendor:
		return irremote.KaseikyoDenon
	case JVCVendor:
		return irremote.KaseikyoJVC
	case MitsubishiVendor:
		return irremote.KaseikyoMitsubishi
	}
	return irremote.Kaseikyo
}

// Decoder decodes Kaseikyo frames of all vendors.
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
	vendor := uint16(raw)
	value := uint32(raw >> VendorIDBits)
	b0, b1, b2, b3 := uint8(value), uint8(value>>8), uint8(value>>16), uint8(value>>24)

	r.Protocol = ProtocolOf(vendor)
	r.Address = uint16(value) >> VendorParityBits
	r.Command = uint16(b2)
	r.Raw = raw
	r.Bits = Bits
	if VendorParity(vendor) != b0&0xF {
		r.Flags |= irremote.FlagParityFailed
	}
	if b3 != b0^b1^b2 {
		r.Flags |= irremote.FlagParityFailed
	}
	if r.Protocol == irremote.Kaseikyo {
		r.Flags |= irremote.FlagExtraInfo
		r.Extra = vendor
	}
	if f.IsRepeatGap(RepeatDist) {
		r.Flags |= irremote.FlagRepeat
	}
	return nil
}
