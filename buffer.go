package irremote

// Buffer holds the durations of one captured frame in ticks.
//
// Entry 0 is the space that preceded the frame. Odd entries are marks, even
// entries are spaces; the last entry of a complete frame is the trailing space.
type Buffer struct {
	entries  [MaxEntries]uint16
	n        int
	capacity int
	overflow bool
}

// Len returns the number of valid entries.
func (b *Buffer) Len() int { return b.n }

// Cap returns the configured capacity.
func (b *Buffer) Cap() int { return b.capacity }

// At returns entry i in ticks.
func (b *Buffer) At(i int) uint16 { return b.entries[i] }

// Overflowed reports whether entries were dropped for lack of capacity.
func (b *Buffer) Overflowed() bool { return b.overflow }

// IsMark reports whether entry i is a mark.
func IsMark(i int) bool { return i&1 == 1 }

// CopyTo copies the valid entries into dst and returns the number copied.
func (b *Buffer) CopyTo(dst []uint16) int {
	return copy(dst, b.entries[:b.n])
}

func (b *Buffer) push(ticks uint16) bool {
	if b.n >= b.capacity {
		b.overflow = true
		return false
	}
	b.entries[b.n] = ticks
	b.n++
	return true
}

func (b *Buffer) reset() {
	b.n = 0
	b.overflow = false
}
