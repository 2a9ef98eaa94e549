package irremote

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func headerDecoder(p Protocol, timing PulseDistanceWidth) Decoder {
	return DecoderFunc(func(f *Frame, r *Result) error {
		if !timing.CheckHeader(f) {
			return ErrHeader
		}
		r.Protocol = p
		return nil
	})
}

func TestDispatchFirstMatchWins(t *testing.T) {
	c := qt.New(t)
	f := frameOf(c, Config{}, distanceTiming.Encode(nil, 0xBEEF, 16))

	first := headerDecoder(NEC, distanceTiming)
	second := headerDecoder(Cheapo, distanceTiming)

	for i := 0; i < 50; i++ {
		c.Assert(NewDispatcher(first, second).Decode(f).Protocol, qt.Equals, NEC)
		c.Assert(NewDispatcher(second, first).Decode(f).Protocol, qt.Equals, Cheapo)
	}
}

func TestDispatchSkipsRejected(t *testing.T) {
	c := qt.New(t)
	f := frameOf(c, Config{}, distanceTiming.Encode(nil, 0xBEEF, 16))

	calls := 0
	reject := DecoderFunc(func(f *Frame, r *Result) error {
		calls++
		r.Address = 0x55 // must not leak into the next candidate
		return ErrHeader
	})
	accept := DecoderFunc(func(f *Frame, r *Result) error {
		r.Protocol = Samsung
		return nil
	})
	log := &recordingLogger{}
	d := NewDispatcher(reject)
	d.Register(accept)
	d.SetLogger(log)
	c.Assert(d.Len(), qt.Equals, 2)

	res := d.Decode(f)
	c.Assert(calls, qt.Equals, 1)
	c.Assert(res.Protocol, qt.Equals, Samsung)
	c.Assert(res.Address, qt.Equals, uint16(0))
	c.Assert(res.Err, qt.IsNil)
	c.Assert(log.lines, qt.HasLen, 1)
	c.Assert(log.lines[0], qt.Contains, "header mismatch")
}

func TestDispatchUnknown(t *testing.T) {
	c := qt.New(t)
	f := frameOf(c, Config{}, distanceTiming.Encode(nil, 0xBEEF, 16))
	d := NewDispatcher(headerDecoder(Sony, widthTiming))

	res := d.Decode(f)
	c.Assert(res.Protocol, qt.Equals, Unknown)
	c.Assert(res.Known(), qt.IsFalse)
	c.Assert(res.Err, qt.ErrorIs, ErrUnknownProtocol)
	c.Assert(int(res.Bits), qt.Equals, f.Len())
	c.Assert(res.Raw, qt.Not(qt.Equals), uint64(0))

	// same button, jittered timings, same hash
	pairs := distanceTiming.Encode(nil, 0xBEEF, 16)
	for i := range pairs {
		pairs[i][0] += Pair(40, 0)[0]
	}
	again := d.Decode(frameOf(c, Config{}, pairs))
	c.Assert(again.Raw, qt.Equals, res.Raw)

	other := d.Decode(frameOf(c, Config{}, distanceTiming.Encode(nil, 0xBEEE, 16)))
	c.Assert(other.Raw, qt.Not(qt.Equals), res.Raw)
}

func TestProtocolAndFlagNames(t *testing.T) {
	c := qt.New(t)
	c.Assert(NEC.String(), qt.Equals, "NEC")
	c.Assert(KaseikyoDenon.String(), qt.Equals, "Kaseikyo_Denon")
	c.Assert(Protocol(200).String(), qt.Equals, "UNKNOWN")
	c.Assert(Flags(0).String(), qt.Equals, "none")
	c.Assert((FlagRepeat | FlagToggle).String(), qt.Equals, "Repeat|Toggle")
	c.Assert((FlagRepeat | FlagToggle).Has(FlagToggle), qt.IsTrue)
}
