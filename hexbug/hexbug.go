/*
Package hexbug decodes and encodes the IR signals of the 6-button, 4-channel
HEXBUG BattleBots remote control.

## Hardware

A 38kHz demodulating IR receiver works. The transmitter frequency has not
been measured directly.

## Protocol

A frame starts with a long mark of about 1.75ms and a short space. Then
follow 9 pulse width coded bits: the space is always about 350µs, a mark of
about 1ms is a one and about 350µs a zero. Measured marks vary by roughly
+/- 14%.

Bits are read LSB first. The first 6 are the buttons:

	| Button  | Val |  Hex |
	|^^^^^^^^^|^^^^^|^^^^^^|
	|      Fwd|   1 | 0x01 |
	|     Back|   2 | 0x02 |
	|     Left|   4 | 0x04 |
	|    Right|   8 | 0x08 |
	| LeftWeap|  16 | 0x10 |
	|RightWeap|  32 | 0x20 |

The next two bits are the channel.

	| Ch |  Hex | 2-bit Val |
	^^^^^^^^^^^^^^^^^^^^^^^^^
	|  1 | 0x00 | 0         |
	|  2 | 0x40 | 1         |
	|  3 | 0xC0 | 3         |
	|  4 | 0x80 | 2         |

Yes, channel 3 and 4 seem like they've been swapped.

The ninth bit makes the number of ones odd.

	PCCUDRLBF

	P - Parity
	C - Channel bit
	U - Right Weapon button
	D - Left Weapon Button
	R - Right button
	L - Left Button
	B - Back Button
	F - Forward Button

## What the Transmitter Sends

A button press sends the frame twice about 6ms apart and keeps repeating
it while held. On release, 10 stop frames (no button bits) follow about
200ms apart. Swapping channels sends stop frames on the new channel.

Decoded results carry the channel bits (shifted down) in Address and the
button bits in Command.

## Example

Take the first channel seen as our own, like the toys themselves do:

	rx, _ := irremote.NewReceiver(irremote.Config{}, hexbug.NewDecoder())
	...
	res, ok := rx.Decode()
	if ok && res.Protocol == irremote.Hexbug && !res.ParityFailed() {
		if r.Channel == -1 {
			r.Channel = int(res.Address)
		}
		if int(res.Address) == r.Channel {
			r.Cmd = hexbug.Cmd(res.Raw)
		}
	}
	rx.Resume()
*/
package hexbug

import (
	"math/bits"

	"github.com/sparques/irremote"
)

const (
	CmdStop          = 0
	CmdFwdMask       = 0b000000001
	CmdBackMask      = 0b000000010
	CmdLeftMask      = 0b000000100
	CmdRightMask     = 0b000001000
	CmdRightWeapMask = 0b000010000
	CmdLeftWeapMask  = 0b000100000
	CmdButtonMask    = 0b000111111

	CmdChannelMask = 0b011000000
	CmdParityMask  = 0b100000000
)

const (
	//Hexbug Channel ids; sutiable for comparing with cmd and'ed with a mask: if cmd & CmdChannelMask == CH2
	CH1 = 0b000000000
	CH2 = 0b001000000
	CH3 = 0b011000000 // not a mistake, go figure
	CH4 = 0b010000000
)

const (
	StartMark = 1750
	OneMark   = 1000
	ZeroMark  = 350
	BitSpace  = 350
	Bits      = 9

	channelShift = 6
)

// Timing describes a hexbug frame.
var Timing = irremote.PulseDistanceWidth{
	HeaderMark:  StartMark,
	HeaderSpace: BitSpace,
	OneMark:     OneMark,
	OneSpace:    BitSpace,
	ZeroMark:    ZeroMark,
	ZeroSpace:   BitSpace,
	Order:       irremote.LSBFirst,
}

// Cmd is the 8 data bits of a frame; the parity bit is added when sending.
type Cmd uint16

// Buttons returns the button bits.
func (c Cmd) Buttons() uint16 { return uint16(c) & CmdButtonMask }

// Channel returns the 2-bit channel value.
func (c Cmd) Channel() uint16 { return uint16(c) & CmdChannelMask >> channelShift }

// withParity sets the ninth bit so the number of ones is odd.
func (c Cmd) withParity() uint64 {
	v := uint64(c) &^ CmdParityMask
	if bits.OnesCount64(v)%2 == 0 {
		v |= CmdParityMask
	}
	return v
}

// MarshalFrame implements irremote.FrameMarshaller.
func (c Cmd) MarshalFrame() []irremote.TimePair {
	return Timing.Encode(make([]irremote.TimePair, 0, Bits+1), c.withParity(), Bits)
}

// Decoder decodes hexbug frames.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode implements irremote.Decoder. Frames with even parity are reported
// with FlagParityFailed.
func (d *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	raw, err := Timing.Decode(f, Bits)
	if err != nil {
		return err
	}
	cmd := Cmd(raw)
	r.Protocol = irremote.Hexbug
	r.Address = cmd.Channel()
	r.Command = cmd.Buttons()
	r.Raw = raw
	r.Bits = Bits
	if bits.OnesCount64(raw)%2 == 0 {
		r.Flags |= irremote.FlagParityFailed
	}
	return nil
}
