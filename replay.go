package irremote

import "time"

// Replay feeds recorded mark/space pairs through the state machine the way
// an edge-interrupt driver would, then lets the trailing space run into the
// gap timeout. It is meant for host-side trace decoding and tests; on a
// device the interrupt handlers call Tick and Edge directly.
func (c *Capture) Replay(pairs ...TimePair) {
	var space uint16
	for _, p := range pairs {
		// the timer would have noticed a long space before the next edge
		c.Tick(Space, space)
		c.Edge(Mark, 0)
		c.Edge(Space, ticksOf(p[0], c.tick))
		space = ticksOf(p[1], c.tick)
	}
	c.Tick(Space, space)
	for i := 0; i <= int(c.gapTicks) && c.State() == StateReceiving; i++ {
		c.Tick(Space, 1)
	}
}

// Wait advances the idle input by d.
func (c *Capture) Wait(d time.Duration) {
	for d > 0 {
		n := ticksOf(d, c.tick)
		if n == 0 {
			return
		}
		c.Tick(Space, n)
		d -= time.Duration(n) * c.tick
	}
}
