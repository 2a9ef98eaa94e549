package irremote

import "time"

// Frame is the read-only view of a completed capture that decoders work on.
// Durations handed out by Frame are in microseconds.
type Frame struct {
	buf  *Buffer
	m    Matcher
	tick time.Duration
	last Result
}

// NewFrame wraps buf for decoding. last is the previously decoded result,
// if any.
func NewFrame(buf *Buffer, m Matcher, tick time.Duration, last Result) *Frame {
	return &Frame{buf: buf, m: m, tick: tick, last: last}
}

// Len returns the number of entries including the leading gap and the
// trailing space.
func (f *Frame) Len() int { return f.buf.Len() }

// Ticks returns entry i in ticks.
func (f *Frame) Ticks(i int) uint16 { return f.buf.At(i) }

// Micros returns entry i in microseconds.
func (f *Frame) Micros(i int) uint32 {
	return uint32(time.Duration(f.buf.At(i)) * f.tick / time.Microsecond)
}

// Gap returns the space preceding the frame in microseconds.
func (f *Frame) Gap() uint32 { return f.Micros(0) }

// Matcher returns the matcher decoders should use.
func (f *Frame) Matcher() Matcher { return f.m }

// Last returns the result of the previous decode pass.
func (f *Frame) Last() Result { return f.last }

// Trailing returns the index of the trailing space.
func (f *Frame) Trailing() int { return f.buf.Len() - 1 }

// MatchMark reports whether entry i is a mark of about micros.
func (f *Frame) MatchMark(i int, micros uint32) bool {
	return i < f.buf.Len() && IsMark(i) && f.m.MatchMark(f.Micros(i), micros)
}

// MatchSpace reports whether entry i is a space of about micros.
func (f *Frame) MatchSpace(i int, micros uint32) bool {
	return i < f.buf.Len() && !IsMark(i) && f.m.MatchSpace(f.Micros(i), micros)
}

// IsRepeatGap reports whether the frame followed the previous one closely
// enough to be its repeat; the allowed distance is repeatDistance plus a
// quarter.
func (f *Frame) IsRepeatGap(repeatDistance uint32) bool {
	return f.Gap() < repeatDistance+repeatDistance/4
}

// CopyMicros writes the frame after the leading gap into dst in
// microseconds, with the receiver's mark excess taken back out: marks are
// shortened and spaces lengthened by MarkExcess. It returns the number of
// values written.
func (f *Frame) CopyMicros(dst []uint32) int {
	n := 0
	for i := 1; i < f.Len() && n < len(dst); i++ {
		d := f.Micros(i)
		switch {
		case !IsMark(i):
			d += f.m.MarkExcess
		case d > f.m.MarkExcess:
			d -= f.m.MarkExcess
		default:
			d = 0
		}
		dst[n] = d
		n++
	}
	return n
}
