//go:build tinygo

package irremote

import (
	"machine"
	"runtime/interrupt"
	"time"
)

// RxDevice feeds a demodulating IR receiver on pin into a Receiver: pin
// interrupts call Edge, a ticker calls Tick once per tick period.
type RxDevice struct {
	pin machine.Pin
	rx  *Receiver
	// Inverted selects receivers whose output is high while carrier is
	// present. The common ones idle high and pull low on a mark.
	Inverted bool

	tick time.Duration
	last time.Time
	stop chan struct{}
}

// NewRxDevice configures pin as an input for rx.
func NewRxDevice(pin machine.Pin, rx *Receiver) *RxDevice {
	// the most common receivers have a pull up pin builtin
	// but in the future, may want to add the option to use PinPullupInput
	pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &RxDevice{
		pin:  pin,
		rx:   rx,
		tick: rx.Capture().TickPeriod(),
	}
}

// Receiver returns the receiver this device feeds.
func (d *RxDevice) Receiver() *Receiver { return d.rx }

func (d *RxDevice) level() Level {
	if d.pin.Get() == d.Inverted {
		return Mark
	}
	return Space
}

// elapsed returns whole ticks since the previous call and keeps the
// remainder for the next one.
func (d *RxDevice) elapsed(now time.Time) uint16 {
	n := now.Sub(d.last) / d.tick
	if n > 0xFFFF {
		d.last = now
		return 0xFFFF
	}
	d.last = d.last.Add(n * d.tick)
	return uint16(n)
}

func (d *RxDevice) interruptHandler(machine.Pin) {
	d.rx.Edge(d.level(), d.elapsed(time.Now()))
}

func (d *RxDevice) ticker(stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		default:
		}
		time.Sleep(d.tick)
		// Tick and Edge must not interleave
		state := interrupt.Disable()
		d.rx.Tick(d.level(), d.elapsed(time.Now()))
		interrupt.Restore(state)
	}
}

// Start enables capture, sets the interrupt handler and starts the tick
// goroutine.
func (d *RxDevice) Start() error {
	if d.stop != nil {
		return nil
	}
	d.last = time.Now()
	d.rx.Start()
	if err := d.pin.SetInterrupt(machine.PinFalling|machine.PinRising, d.interruptHandler); err != nil {
		d.rx.Stop()
		return err
	}
	d.stop = make(chan struct{})
	go d.ticker(d.stop)
	return nil
}

// Stop disables the interrupt handler and the tick goroutine.
func (d *RxDevice) Stop() {
	if d.stop == nil {
		return
	}
	d.pin.SetInterrupt(machine.PinFalling|machine.PinRising, nil)
	close(d.stop)
	d.stop = nil
	d.rx.Stop()
}
