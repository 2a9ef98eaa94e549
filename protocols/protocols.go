// Package protocols bundles the codec subpackages into a ready-made decoder
// list and an encoder registry keyed by protocol name.
package protocols

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/cheapo"
	"github.com/sparques/irremote/denon"
	"github.com/sparques/irremote/hexbug"
	"github.com/sparques/irremote/kaseikyo"
	"github.com/sparques/irremote/nec"
	"github.com/sparques/irremote/ppm"
	"github.com/sparques/irremote/rc5"
	"github.com/sparques/irremote/samsung"
	"github.com/sparques/irremote/sony"
)

// Default returns a fresh decoder list in dispatch order: fixed-length
// frames with distinct headers first, the permissive cheapo decoder last.
// PPM is left out; it matches any evenly spaced pulse train.
func Default() []irremote.Decoder {
	return []irremote.Decoder{
		nec.NewDecoder(),
		samsung.NewDecoder(),
		kaseikyo.NewDecoder(),
		sony.NewDecoder(),
		rc5.NewDecoder(),
		denon.NewDecoder(),
		hexbug.NewDecoder(),
		cheapo.NewDecoder(),
	}
}

// WithPPM returns Default followed by p.
func WithPPM(p *ppm.Decoder) []irremote.Decoder {
	return append(Default(), p)
}

// Encoder builds a frame from an address and command.
type Encoder func(address, command uint16) irremote.FrameMarshaller

var encoders = make(map[string]Encoder)

// Register adds an encoder under name, case-insensitively. A later
// registration replaces an earlier one.
func Register(name string, enc Encoder) {
	encoders[strings.ToLower(name)] = enc
}

func init() {
	Register("nec", func(a, c uint16) irremote.FrameMarshaller {
		return nec.Frame{Address: a, Command: byte(c)}
	})
	Register("samsung", func(a, c uint16) irremote.FrameMarshaller {
		return &samsung.Frame{Addr: a, Cmd: c}
	})
	Register("panasonic", func(a, c uint16) irremote.FrameMarshaller {
		return kaseikyo.Panasonic(a, uint8(c))
	})
	Register("kaseikyo_denon", func(a, c uint16) irremote.FrameMarshaller {
		return kaseikyo.Frame{Vendor: kaseikyo.DenonVendor, Address: a, Command: uint8(c)}
	})
	Register("kaseikyo_sharp", func(a, c uint16) irremote.FrameMarshaller {
		return kaseikyo.Frame{Vendor: kaseikyo.SharpVendor, Address: a, Command: uint8(c)}
	})
	Register("kaseikyo_jvc", func(a, c uint16) irremote.FrameMarshaller {
		return kaseikyo.Frame{Vendor: kaseikyo.JVCVendor, Address: a, Command: uint8(c)}
	})
	Register("kaseikyo_mitsubishi", func(a, c uint16) irremote.FrameMarshaller {
		return kaseikyo.Frame{Vendor: kaseikyo.MitsubishiVendor, Address: a, Command: uint8(c)}
	})
	Register("sony", func(a, c uint16) irremote.FrameMarshaller {
		bits := sony.Bits12
		switch {
		case a > 0xFF:
			bits = sony.Bits20
		case a > 0x1F:
			bits = sony.Bits15
		}
		return sony.Frame{Address: a, Command: uint8(c), Bits: bits}
	})
	Register("rc5", func(a, c uint16) irremote.FrameMarshaller {
		return rc5.Frame{Address: uint8(a), Command: uint8(c)}
	})
	Register("denon", func(a, c uint16) irremote.FrameMarshaller {
		return denon.Frame{Address: uint8(a), Command: uint8(c)}
	})
	Register("hexbug", func(a, c uint16) irremote.FrameMarshaller {
		return hexbug.Cmd(a<<6&hexbug.CmdChannelMask | c&hexbug.CmdButtonMask)
	})
	Register("cheapo", func(_, c uint16) irremote.FrameMarshaller {
		return cheapo.Cmd(c)
	})
}

// Encode returns the pairs for one frame of the named protocol.
func Encode(name string, address, command uint16) ([]irremote.TimePair, error) {
	enc, ok := encoders[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: no encoder for %q", irremote.ErrUnknownProtocol, name)
	}
	return enc(address, command).MarshalFrame(), nil
}

// Names lists the registered encoders.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for n := range encoders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
