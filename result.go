package irremote

import "strings"

// Protocol identifies the codec that produced a Result.
type Protocol uint8

const (
	Unknown Protocol = iota
	PulseDistance
	PulseWidth
	NEC
	Samsung
	Kaseikyo
	Panasonic
	KaseikyoDenon
	KaseikyoSharp
	KaseikyoJVC
	KaseikyoMitsubishi
	Sony
	Denon
	RC5
	Hexbug
	Cheapo
	PPM
)

var protocolNames = [...]string{
	Unknown:            "UNKNOWN",
	PulseDistance:      "PulseDistance",
	PulseWidth:         "PulseWidth",
	NEC:                "NEC",
	Samsung:            "Samsung",
	Kaseikyo:           "Kaseikyo",
	Panasonic:          "Panasonic",
	KaseikyoDenon:      "Kaseikyo_Denon",
	KaseikyoSharp:      "Kaseikyo_Sharp",
	KaseikyoJVC:        "Kaseikyo_JVC",
	KaseikyoMitsubishi: "Kaseikyo_Mitsubishi",
	Sony:               "Sony",
	Denon:              "Denon",
	RC5:                "RC5",
	Hexbug:             "Hexbug",
	Cheapo:             "Cheapo",
	PPM:                "PPM",
}

func (p Protocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "UNKNOWN"
}

// Flags qualify a decoded Result.
type Flags uint8

const (
	// FlagRepeat is set for repeat frames and frames arriving within the
	// protocol's repeat distance of the previous one.
	FlagRepeat Flags = 1 << iota
	// FlagAutoRepeat marks the protocol-defined automatic second frame
	// (e.g. the inverted Denon frame).
	FlagAutoRepeat
	// FlagParityFailed marks a frame whose bit structure decoded but whose
	// internal consistency check did not hold.
	FlagParityFailed
	// FlagToggle reflects the toggle bit of protocols that carry one.
	FlagToggle
	// FlagExtraInfo means Result.Extra is meaningful.
	FlagExtraInfo
	// FlagOverflow marks a frame that did not fit the capture buffer.
	FlagOverflow
	// FlagMSBFirst records the bit order of Raw.
	FlagMSBFirst
)

var flagNames = [...]string{"Repeat", "AutoRepeat", "ParityFailed", "Toggle", "ExtraInfo", "Overflow", "MSBFirst"}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var sb strings.Builder
	for i, name := range flagNames {
		if f&(1<<i) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(name)
	}
	return sb.String()
}

// Has reports whether all flags in mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Result is the outcome of one decode pass. It is a plain value: it owns no
// reference into the capture buffer.
type Result struct {
	Protocol Protocol
	Address  uint16
	Command  uint16
	// Extra holds protocol specific data such as an unknown Kaseikyo vendor id.
	Extra uint16
	// Raw is the complete bit pattern in reception order, or the timing hash
	// for Unknown frames.
	Raw   uint64
	Bits  uint8
	Flags Flags
	// Err explains an Unknown result and is nil otherwise.
	Err error
}

// IsRepeat reports FlagRepeat.
func (r Result) IsRepeat() bool { return r.Flags&FlagRepeat != 0 }

// IsAutoRepeat reports FlagAutoRepeat.
func (r Result) IsAutoRepeat() bool { return r.Flags&FlagAutoRepeat != 0 }

// ParityFailed reports FlagParityFailed.
func (r Result) ParityFailed() bool { return r.Flags&FlagParityFailed != 0 }

// Toggle reports FlagToggle.
func (r Result) Toggle() bool { return r.Flags&FlagToggle != 0 }

// Known reports whether a decoder accepted the frame.
func (r Result) Known() bool { return r.Protocol != Unknown }
