package irremote

// BitOrder selects how bits are placed in the decoded value.
type BitOrder uint8

const (
	// LSBFirst puts the first received bit in bit 0.
	LSBFirst BitOrder = iota
	// MSBFirst puts the first received bit in the highest bit.
	MSBFirst
)

// PulseDistanceWidth describes the timing of a pulse distance and/or pulse
// width protocol in microseconds. A zero HeaderMark means no header.
type PulseDistanceWidth struct {
	HeaderMark  uint32
	HeaderSpace uint32
	OneMark     uint32
	OneSpace    uint32
	ZeroMark    uint32
	ZeroSpace   uint32
	Order       BitOrder
	StopBit     bool
	// RepeatDistance is the space between two frames of a held key.
	RepeatDistance uint32
}

// Entries returns the buffer length of a frame carrying bits data bits.
func (t *PulseDistanceWidth) Entries(bits int) int {
	n := 1 + 2*bits
	if t.HeaderMark != 0 {
		n += 2
	}
	if t.StopBit {
		n += 2
	}
	return n
}

// DataStart returns the index of the first data mark.
func (t *PulseDistanceWidth) DataStart() int {
	if t.HeaderMark != 0 {
		return 3
	}
	return 1
}

// CheckHeader matches the header mark and space.
func (t *PulseDistanceWidth) CheckHeader(f *Frame) bool {
	if t.HeaderMark == 0 {
		return true
	}
	return f.MatchMark(1, t.HeaderMark) && f.MatchSpace(2, t.HeaderSpace)
}

// Decode checks the frame length and header and decodes bits data bits.
func (t *PulseDistanceWidth) Decode(f *Frame, bits int) (uint64, error) {
	if f.Len() != t.Entries(bits) {
		return 0, ErrLength
	}
	if !t.CheckHeader(f) {
		return 0, ErrHeader
	}
	v, _, err := f.DecodePulseDistanceWidth(t, t.DataStart(), bits)
	return v, err
}

// Encode appends the frame for the low bits of value to dst.
// The final pair has a zero space.
func (t *PulseDistanceWidth) Encode(dst []TimePair, value uint64, bits int) []TimePair {
	if t.HeaderMark != 0 {
		dst = append(dst, Pair(t.HeaderMark, t.HeaderSpace))
	}
	for bit := 0; bit < bits; bit++ {
		var one bool
		if t.Order == MSBFirst {
			one = value>>(bits-1-bit)&1 == 1
		} else {
			one = value>>bit&1 == 1
		}
		if one {
			dst = append(dst, Pair(t.OneMark, t.OneSpace))
		} else {
			dst = append(dst, Pair(t.ZeroMark, t.ZeroSpace))
		}
	}
	if t.StopBit {
		return append(dst, Pair(t.OneMark, 0))
	}
	if len(dst) > 0 {
		dst[len(dst)-1][1] = 0
	}
	return dst
}

// DecodePulseDistanceWidth picks distance, width or combined decoding from
// the timing description. See DecodePulseDistance for the results.
func (f *Frame) DecodePulseDistanceWidth(t *PulseDistanceWidth, start, bits int) (uint64, int, error) {
	switch {
	case t.OneMark == t.ZeroMark:
		return f.DecodePulseDistance(start, bits, t.OneMark, t.OneSpace, t.ZeroSpace, t.Order)
	case t.OneSpace == t.ZeroSpace:
		return f.DecodePulseWidth(start, bits, t.OneMark, t.ZeroMark, t.OneSpace, t.Order)
	}
	return f.decodeMarkSpace(start, bits, t)
}

// DecodePulseDistance decodes bits bits starting at the mark at index start.
// Marks are all bitMark long; the following space tells the value.
// On failure it returns the index of the offending bit along with
// ErrTruncated or ErrMismatch; on success the bit index equals bits.
func (f *Frame) DecodePulseDistance(start, bits int, bitMark, oneSpace, zeroSpace uint32, order BitOrder) (uint64, int, error) {
	if bits < 1 || bits > 64 {
		return 0, 0, ErrLength
	}
	var v uint64
	for bit := 0; bit < bits; bit++ {
		i := start + 2*bit
		if i+1 >= f.Trailing() {
			return v, bit, ErrTruncated
		}
		if !f.MatchMark(i, bitMark) {
			return v, bit, ErrMismatch
		}
		var one bool
		switch {
		case f.MatchSpace(i+1, oneSpace):
			one = true
		case f.MatchSpace(i+1, zeroSpace):
		default:
			return v, bit, ErrMismatch
		}
		v = putBit(v, bit, one, order)
	}
	return v, bits, nil
}

// DecodePulseWidth decodes bits bits starting at the mark at index start.
// Spaces are all bitSpace long; the mark tells the value. The space after
// the last mark may be the trailing space and is not checked.
func (f *Frame) DecodePulseWidth(start, bits int, oneMark, zeroMark, bitSpace uint32, order BitOrder) (uint64, int, error) {
	if bits < 1 || bits > 64 {
		return 0, 0, ErrLength
	}
	var v uint64
	for bit := 0; bit < bits; bit++ {
		i := start + 2*bit
		if i >= f.Trailing() {
			return v, bit, ErrTruncated
		}
		var one bool
		switch {
		case f.MatchMark(i, oneMark):
			one = true
		case f.MatchMark(i, zeroMark):
		default:
			return v, bit, ErrMismatch
		}
		if i+1 < f.Trailing() && !f.MatchSpace(i+1, bitSpace) {
			return v, bit, ErrMismatch
		}
		v = putBit(v, bit, one, order)
	}
	return v, bits, nil
}

func (f *Frame) decodeMarkSpace(start, bits int, t *PulseDistanceWidth) (uint64, int, error) {
	if bits < 1 || bits > 64 {
		return 0, 0, ErrLength
	}
	var v uint64
	for bit := 0; bit < bits; bit++ {
		i := start + 2*bit
		if i+1 >= f.Trailing() {
			return v, bit, ErrTruncated
		}
		var one bool
		switch {
		case f.MatchMark(i, t.OneMark) && f.MatchSpace(i+1, t.OneSpace):
			one = true
		case f.MatchMark(i, t.ZeroMark) && f.MatchSpace(i+1, t.ZeroSpace):
		default:
			return v, bit, ErrMismatch
		}
		v = putBit(v, bit, one, t.Order)
	}
	return v, bits, nil
}

func putBit(v uint64, bit int, one bool, order BitOrder) uint64 {
	if order == MSBFirst {
		v <<= 1
		if one {
			v |= 1
		}
		return v
	}
	if one {
		v |= 1 << bit
	}
	return v
}
