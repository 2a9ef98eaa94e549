package irremote

import (
	"fmt"
	"time"
)

// MaxEntries is the compile-time capacity of a Buffer.
const MaxEntries = 200

// Logger receives debug output from the decode pass. *logrus.Logger and
// logrus.FieldLogger satisfy it. It is never called from Tick or Edge.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Config is fixed when the Receiver is built.
// Zero fields take the value from DefaultConfig.
type Config struct {
	// TickPeriod is the duration of one timer tick.
	TickPeriod time.Duration
	// FrameGap is the space duration after which a frame is complete.
	FrameGap time.Duration
	// TrailingMargin is added to the recorded trailing space.
	TrailingMargin time.Duration
	// MarkExcess is the amount receivers lengthen marks (and shorten spaces).
	MarkExcess time.Duration
	// Tolerance is the matching band in percent of the expected duration.
	Tolerance int
	// ToleranceFloor is the minimum matching band.
	ToleranceFloor time.Duration
	// Capacity limits the number of buffer entries, at most MaxEntries.
	Capacity int
	Logger   Logger
}

// DefaultConfig returns the configuration used for zero fields.
func DefaultConfig() Config {
	return Config{
		TickPeriod:     50 * time.Microsecond,
		FrameGap:       5 * time.Millisecond,
		TrailingMargin: 50 * time.Microsecond,
		MarkExcess:     20 * time.Microsecond,
		Tolerance:      25,
		ToleranceFloor: 50 * time.Microsecond,
		Capacity:       MaxEntries,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.TickPeriod == 0 {
		c.TickPeriod = def.TickPeriod
	}
	if c.FrameGap == 0 {
		c.FrameGap = def.FrameGap
	}
	if c.TrailingMargin == 0 {
		c.TrailingMargin = c.TickPeriod
	}
	if c.MarkExcess == 0 {
		c.MarkExcess = def.MarkExcess
	}
	if c.Tolerance == 0 {
		c.Tolerance = def.Tolerance
	}
	if c.ToleranceFloor == 0 {
		c.ToleranceFloor = c.TickPeriod
	}
	if c.Capacity == 0 {
		c.Capacity = def.Capacity
	}
	return c
}

func (c Config) validate() error {
	switch {
	case c.TickPeriod < time.Microsecond:
		return fmt.Errorf("%w: tick period %v below 1µs", ErrConfig, c.TickPeriod)
	case c.Capacity < 4 || c.Capacity > MaxEntries:
		return fmt.Errorf("%w: capacity %d outside 4..%d", ErrConfig, c.Capacity, MaxEntries)
	case c.Tolerance < 1 || c.Tolerance > 100:
		return fmt.Errorf("%w: tolerance %d%% outside 1..100", ErrConfig, c.Tolerance)
	case c.FrameGap < c.TickPeriod || c.FrameGap/c.TickPeriod >= 0xFFFF:
		return fmt.Errorf("%w: frame gap %v not representable in ticks of %v", ErrConfig, c.FrameGap, c.TickPeriod)
	case c.MarkExcess < 0 || c.TrailingMargin < 0 || c.ToleranceFloor < 0:
		return fmt.Errorf("%w: negative duration", ErrConfig)
	}
	return nil
}

// Matcher derives the timing matcher for this configuration.
func (c Config) Matcher() Matcher {
	c = c.withDefaults()
	return Matcher{
		Tolerance:  c.Tolerance,
		Floor:      uint32(c.ToleranceFloor / time.Microsecond),
		MarkExcess: uint32(c.MarkExcess / time.Microsecond),
	}
}

func ticksOf(d, tick time.Duration) uint16 {
	n := (d + tick/2) / tick
	if n > 0xFFFF {
		return 0xFFFF
	}
	return uint16(n)
}
