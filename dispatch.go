package irremote

// Decoder attempts to decode a completed frame. It returns nil after filling
// r, or an error describing why the frame is not its protocol. r is zeroed
// before every call and must not be kept.
type Decoder interface {
	Decode(f *Frame, r *Result) error
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(f *Frame, r *Result) error

// Decode implements Decoder.
func (fn DecoderFunc) Decode(f *Frame, r *Result) error { return fn(f, r) }

// Dispatcher tries an ordered list of decoders; the first success wins.
// Decoders with stricter headers or lengths must come before permissive ones
// whose timing envelopes overlap them. A Dispatcher runs one decode pass at
// a time.
type Dispatcher struct {
	decoders []Decoder
	log      Logger
	// result of the current candidate; Decode must not allocate
	scratch Result
}

// NewDispatcher accepts a list of Decoders and returns a Dispatcher trying
// them in the given order. In this way you can multiplex several protocols
// under a single IR receiver.
// E.G.:
//
//	d := irremote.NewDispatcher(nec.NewDecoder(), rc5.NewDecoder())
func NewDispatcher(decoders ...Decoder) *Dispatcher {
	return &Dispatcher{decoders: decoders}
}

// Register appends decoders to the end of the list.
func (d *Dispatcher) Register(decoders ...Decoder) {
	d.decoders = append(d.decoders, decoders...)
}

// Len returns the number of registered decoders.
func (d *Dispatcher) Len() int { return len(d.decoders) }

// SetLogger sets the logger for rejected candidates; nil disables logging.
func (d *Dispatcher) SetLogger(l Logger) { d.log = l }

// Decode runs the decoders against f. If none accepts it the result is
// Unknown, carries ErrUnknownProtocol and a hash of the timings in Raw.
func (d *Dispatcher) Decode(f *Frame) Result {
	for i, dec := range d.decoders {
		d.scratch = Result{}
		err := dec.Decode(f, &d.scratch)
		if err == nil {
			return d.scratch
		}
		if d.log != nil {
			d.log.Debugf("decoder %d (%T) rejected %d entries: %v", i, dec, f.Len(), err)
		}
	}
	return Result{
		Protocol: Unknown,
		Raw:      uint64(timingHash(f)),
		Bits:     uint8(min(f.Len(), 0xFF)),
		Err:      ErrUnknownProtocol,
	}
}

const (
	fnvPrime32  = 16777619
	fnvBasis32  = 2166136261
	hashMinimum = 6
)

// timingHash folds the relation of each duration to the one two entries
// later (shorter, similar, longer) into an FNV-1 hash, so the same unknown
// button gives the same value despite jitter.
func timingHash(f *Frame) uint32 {
	n := f.Len() - 1 // the trailing space carries no signal
	if n < hashMinimum {
		return 0
	}
	h := uint32(fnvBasis32)
	for i := 1; i+2 < n; i++ {
		h = h*fnvPrime32 ^ compareTicks(f.Ticks(i), f.Ticks(i+2))
	}
	return h
}

func compareTicks(prev, next uint16) uint32 {
	switch {
	case uint32(next)*10 < uint32(prev)*8:
		return 0
	case uint32(prev)*10 < uint32(next)*8:
		return 2
	}
	return 1
}
