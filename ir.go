// Package irremote captures infrared remote-control frames as timed mark and
// space pulses and decodes them into protocol, address and command.
//
// Capture is driven from interrupt context through Tick and Edge; decoding
// runs from the caller's loop once Available reports a complete frame:
//
//	rx, _ := irremote.NewReceiver(irremote.DefaultConfig(), protocols.Default()...)
//	rx.Start()
//	for {
//		if res, ok := rx.Decode(); ok {
//			handle(res)
//			rx.Resume()
//		}
//	}
package irremote

import "time"

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000
	// Freq40Khz is used by Sony SIRC.
	Freq40Khz = 40000
	// Freq36Khz is used by Philips RC5.
	Freq36Khz = 36000
	// Freq37Khz is used by Kaseikyo/Panasonic.
	Freq37Khz = 37000
)

// Level is the logical state of the receiver input.
type Level uint8

const (
	// Space is the idle level (no carrier).
	Space Level = iota
	// Mark is the active level (carrier present).
	Mark
)

func (l Level) String() string {
	if l == Mark {
		return "mark"
	}
	return "space"
}

// TimePair encodes a mark duration followed by a space duration.
// A zero space on the last pair of a frame means "end of frame".
type TimePair [2]time.Duration

// Pair builds a TimePair from microsecond values.
func Pair(markMicros, spaceMicros uint32) TimePair {
	return TimePair{
		time.Duration(markMicros) * time.Microsecond,
		time.Duration(spaceMicros) * time.Microsecond,
	}
}

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}
