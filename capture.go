package irremote

import (
	"sync/atomic"
	"time"
)

// State is the mode of the capture state machine.
type State uint32

const (
	// StateIdle waits for the first mark of a frame.
	StateIdle State = iota
	// StateReceiving records marks and spaces.
	StateReceiving
	// StateFrameComplete holds a stable frame until Resume.
	StateFrameComplete
	// StateOverflowed holds a truncated frame until Resume.
	StateOverflowed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReceiving:
		return "receiving"
	case StateFrameComplete:
		return "frame-complete"
	case StateOverflowed:
		return "overflowed"
	}
	return "invalid"
}

// Capture is the interrupt-driven pulse timing state machine.
//
// Tick and Edge run in interrupt context and only ever append to the buffer.
// The state value is the handoff token: once it reads StateFrameComplete or
// StateOverflowed, the buffer belongs to the polling side until Resume.
type Capture struct {
	state   atomic.Uint32
	enabled atomic.Bool

	buf    Buffer
	ticks  uint16 // ticks since the last transition
	inMark bool

	tick     time.Duration
	gapTicks uint16
	margin   uint16
}

// NewCapture returns a stopped state machine for cfg.
func NewCapture(cfg Config) (*Capture, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Capture{
		tick:     cfg.TickPeriod,
		gapTicks: ticksOf(cfg.FrameGap, cfg.TickPeriod),
		margin:   ticksOf(cfg.TrailingMargin, cfg.TickPeriod),
		ticks:    0xFFFF,
	}
	c.buf.capacity = cfg.Capacity
	return c, nil
}

// TickPeriod returns the duration of one tick.
func (c *Capture) TickPeriod() time.Duration { return c.tick }

// GapTicks returns the frame gap timeout in ticks.
func (c *Capture) GapTicks() uint16 { return c.gapTicks }

// Start enables capture from an empty buffer.
func (c *Capture) Start() {
	c.buf.reset()
	c.inMark = false
	c.ticks = 0xFFFF
	c.state.Store(uint32(StateIdle))
	c.enabled.Store(true)
}

// Stop disables capture; Tick and Edge become no-ops.
func (c *Capture) Stop() {
	c.enabled.Store(false)
}

// Resume clears the buffer and waits for the next frame. The gap counter
// keeps running so the next frame's entry 0 is the real distance.
func (c *Capture) Resume() {
	c.buf.reset()
	c.inMark = false
	c.state.Store(uint32(StateIdle))
}

// State returns the current state.
func (c *Capture) State() State {
	return State(c.state.Load())
}

// Available reports whether a frame is waiting to be decoded.
func (c *Capture) Available() bool {
	s := c.State()
	return s == StateFrameComplete || s == StateOverflowed
}

// Buffer returns the captured frame. It must only be read while Available.
func (c *Capture) Buffer() *Buffer {
	return &c.buf
}

// Tick is called from the periodic timer with the sampled input level and
// the number of ticks since the previous Tick or Edge.
func (c *Capture) Tick(level Level, elapsed uint16) {
	c.step(level, elapsed)
}

// Edge is called from the pin interrupt with the level after the transition
// and the number of ticks since the previous Tick or Edge.
func (c *Capture) Edge(level Level, elapsed uint16) {
	c.step(level, elapsed)
}

func (c *Capture) step(level Level, elapsed uint16) {
	if !c.enabled.Load() {
		return
	}
	c.ticks = addTicks(c.ticks, elapsed)

	switch State(c.state.Load()) {
	case StateIdle:
		if level != Mark {
			return
		}
		if c.ticks > c.gapTicks {
			c.buf.reset()
			c.buf.push(c.ticks)
			c.inMark = true
			c.state.Store(uint32(StateReceiving))
		}
		// a mark too soon after the last one is the tail of a frame we
		// missed the start of
		c.ticks = 0

	case StateReceiving:
		switch {
		case c.inMark && level == Space:
			c.closeInterval()
			c.inMark = false
		case !c.inMark && level == Mark:
			c.closeInterval()
			c.inMark = true
		case !c.inMark && c.ticks > c.gapTicks:
			if !c.buf.overflow {
				c.buf.push(addTicks(c.ticks, c.margin))
			}
			if c.buf.overflow {
				c.state.Store(uint32(StateOverflowed))
			} else {
				c.state.Store(uint32(StateFrameComplete))
			}
		}

	case StateFrameComplete, StateOverflowed:
		// keep measuring from the end of the latest mark for the next
		// frame's gap entry
		if level == Mark || c.inMark {
			c.ticks = 0
		}
		c.inMark = level == Mark
	}
}

func (c *Capture) closeInterval() {
	if !c.buf.overflow {
		c.buf.push(c.ticks)
	}
	c.ticks = 0
}

func addTicks(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s < 0xFFFF {
		return uint16(s)
	}
	return 0xFFFF
}
