/*
Package ppm decodes pulse position modulated channel frames sent over IR.

Might work exactly the same as though connected to a regular PPM radio receiver.

Each channel starts with a short mark; the time from one mark to the next is
the channel value, nominally 1ms to 2ms. A frame of N channels therefore has
N+1 marks and ends with the frame gap.

Note, with a carrier of 38kHz, the most graduations you get per channel is 38, slightly
more than 5 bits worth. This is because ppm uses a 1ms to 2ms pulse per channel and
1ms * 38kHz = 38.

So, fairly limited, but still pretty good.

If using to drive a 180 degree servo, that means each graduation is 4.7 degrees (180/38).

## Example

	p := ppm.NewDecoder()
	rx, _ := irremote.NewReceiver(irremote.Config{}, p)
	rx.Start()

	for {
		if rx.Available() {
			rx.Decode()
			rx.Resume()
		}
		X := ppm.DurationToFloat32(p.Channel(0))
		// X ranges from -1 to 1
		servo.Set(X)
		time.Sleep(20 * time.Millisecond)
	}
*/
package ppm

import (
	"sync"
	"time"

	"github.com/sparques/irremote"
)

const (
	MaxChannels = 16
	MinChannels = 4

	// channel period bounds in µs
	MinPeriod = 800
	MaxPeriod = 2200

	minimumTimeBetweenFrames = 6 * time.Millisecond
)

var (
	SafeChannelsMid    = fill(1500 * time.Microsecond)
	SafeChannelsBottom = fill(1000 * time.Microsecond)
)

func fill(d time.Duration) (out [MaxChannels]time.Duration) {
	for i := range out {
		out[i] = d
	}
	return
}

// Decoder keeps the channel values of the latest PPM frame.
type Decoder struct {
	// if we haven't received a frame in Timeout amount of time, we return
	// values from safeChannels
	Timeout time.Duration

	mu sync.Mutex
	// where we store the values we've decoded
	channels [MaxChannels]time.Duration
	// safeChannels are what we report if we exceed Timeout
	safeChannels [MaxChannels]time.Duration
	count        int
	last         time.Time
	now          func() time.Time
}

func NewDecoder() *Decoder {
	return &Decoder{
		Timeout:      100 * minimumTimeBetweenFrames,
		safeChannels: SafeChannelsMid,
		now:          time.Now,
	}
}

// Decode implements irremote.Decoder.
func (p *Decoder) Decode(f *irremote.Frame, r *irremote.Result) error {
	marks := (f.Len() - 1) / 2
	n := marks - 1
	if n < MinChannels || n > MaxChannels {
		return irremote.ErrLength
	}
	var chs [MaxChannels]time.Duration
	for ch := 0; ch < n; ch++ {
		i := 1 + 2*ch
		period := f.Micros(i) + f.Micros(i+1)
		if period < MinPeriod || period > MaxPeriod {
			return irremote.ErrMismatch
		}
		chs[ch] = time.Duration(period) * time.Microsecond
	}

	p.mu.Lock()
	p.channels = chs
	p.count = n
	p.last = p.now()
	p.mu.Unlock()

	r.Protocol = irremote.PPM
	r.Bits = uint8(n)
	return nil
}

func (p *Decoder) SetSafeChannels(sc [MaxChannels]time.Duration) {
	p.mu.Lock()
	p.safeChannels = sc
	p.mu.Unlock()
}

// IsSafe reports whether Timeout passed without a frame and the safe
// values are in effect.
func (p *Decoder) IsSafe() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.expired()
}

func (p *Decoder) expired() bool {
	return p.now().Sub(p.last) > p.Timeout
}

// Count returns the channel count of the latest frame.
func (p *Decoder) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Channel returns the duration of the the pulse for the given channel.
// Converting the time.Duration value into something more useful is left
// to the caller.
// If Timeout has been exceeded, the safe value for the channel is
// returned.
func (p *Decoder) Channel(ch int) time.Duration {
	chs := p.Channels()
	return chs[ch]
}

// Channels returns all the channels.
// If Timeout has been exceeded, the safe values are returned
func (p *Decoder) Channels() [MaxChannels]time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.expired() {
		return p.safeChannels
	}
	return p.channels
}

// DurationToFloat32 maps 1ms..2ms onto -1..1.
func DurationToFloat32(d time.Duration) float32 {
	return float32(2*d-3*time.Millisecond) / float32(time.Millisecond)
}

// Frame is a set of channel values to send.
type Frame []time.Duration

// SyncMark is the mark that starts each channel.
const SyncMark = 300 * time.Microsecond

// MarshalFrame implements irremote.FrameMarshaller.
func (fr Frame) MarshalFrame() []irremote.TimePair {
	out := make([]irremote.TimePair, 0, len(fr)+1)
	for _, d := range fr {
		out = append(out, irremote.TimePair{SyncMark, d - SyncMark})
	}
	return append(out, irremote.TimePair{SyncMark, 0})
}
