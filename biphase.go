package irremote

// BiphaseCursor walks a frame in steps of one biphase unit. An entry may
// span one to three units, so the cursor keeps its position inside the
// current entry between calls.
type BiphaseCursor struct {
	f     *Frame
	unit  uint32
	index int
	units uint8 // units in the current entry, 0 until measured
	used  uint8
}

// Biphase returns a cursor positioned at entry start for the given unit
// duration in microseconds.
func (f *Frame) Biphase(start int, unit uint32) BiphaseCursor {
	return BiphaseCursor{f: f, unit: unit, index: start}
}

// Index returns the current entry index.
func (c *BiphaseCursor) Index() int { return c.index }

// Done reports whether the cursor reached the trailing space.
func (c *BiphaseCursor) Done() bool { return c.index >= c.f.Trailing() }

// Level returns the level of the next unit and advances by one unit.
// Past the last mark the level is Space. ok is false when the current entry
// is not one, two or three units long.
func (c *BiphaseCursor) Level() (level Level, ok bool) {
	if c.Done() {
		return Space, true
	}
	if IsMark(c.index) {
		level = Mark
	}
	if c.units == 0 {
		d := c.f.Micros(c.index)
		m := c.f.Matcher()
		for n := uint32(1); n <= 3; n++ {
			if level == Mark && m.MatchMark(d, n*c.unit) || level == Space && m.MatchSpace(d, n*c.unit) {
				c.units = uint8(n)
				break
			}
		}
		if c.units == 0 {
			return level, false
		}
	}
	c.used++
	if c.used >= c.units {
		c.index++
		c.units, c.used = 0, 0
	}
	return level, true
}

// Bit reads one bit from two half-bit levels. A space-to-mark transition
// is a one and mark-to-space a zero; no transition is an error.
func (c *BiphaseCursor) Bit() (bool, error) {
	first, ok := c.Level()
	if !ok {
		return false, ErrMismatch
	}
	second, ok := c.Level()
	if !ok {
		return false, ErrMismatch
	}
	switch {
	case first == Space && second == Mark:
		return true, nil
	case first == Mark && second == Space:
		return false, nil
	}
	return false, ErrMismatch
}

// Bits reads n bits. On failure it returns the failing bit index; reaching
// the end of the frame before n bits yields ErrTruncated.
func (c *BiphaseCursor) Bits(n int, order BitOrder) (uint64, int, error) {
	if n < 1 || n > 64 {
		return 0, 0, ErrLength
	}
	var v uint64
	for bit := 0; bit < n; bit++ {
		if c.Done() {
			return v, bit, ErrTruncated
		}
		one, err := c.Bit()
		if err != nil {
			return v, bit, err
		}
		v = putBit(v, bit, one, order)
	}
	return v, n, nil
}

// EncodeBiphase appends the biphase frame for the low bits of value to dst.
// Leading space halves fall into the inter-frame gap and the last pair has
// a zero space.
func EncodeBiphase(dst []TimePair, value uint64, bits int, unit uint32, order BitOrder) []TimePair {
	var mark, space uint32
	for bit := 0; bit < bits; bit++ {
		var one bool
		if order == MSBFirst {
			one = value>>(bits-1-bit)&1 == 1
		} else {
			one = value>>bit&1 == 1
		}
		halves := [2]Level{Mark, Space}
		if one {
			halves = [2]Level{Space, Mark}
		}
		for _, l := range halves {
			switch {
			case l == Mark:
				if space > 0 {
					dst = append(dst, Pair(mark, space))
					mark, space = 0, 0
				}
				mark += unit
			case mark > 0:
				space += unit
			}
		}
	}
	if mark > 0 {
		dst = append(dst, Pair(mark, 0))
	}
	return dst
}
