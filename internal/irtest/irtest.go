// Package irtest holds helpers for driving a Receiver from recorded pairs in
// protocol tests.
package irtest

import (
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irremote"
)

// Receiver returns a started receiver with the default configuration.
func Receiver(c *qt.C, decoders ...irremote.Decoder) *irremote.Receiver {
	r, err := irremote.NewReceiver(irremote.Config{}, decoders...)
	c.Assert(err, qt.IsNil)
	r.Start()
	return r
}

// Decode replays pairs after gap of silence, decodes the frame and resumes
// capture.
func Decode(c *qt.C, r *irremote.Receiver, gap time.Duration, pairs []irremote.TimePair) irremote.Result {
	r.Capture().Wait(gap)
	r.Capture().Replay(pairs...)
	c.Assert(r.Available(), qt.IsTrue, qt.Commentf("frame not complete after replay"))
	res, ok := r.Decode()
	c.Assert(ok, qt.IsTrue)
	r.Resume()
	return res
}

// DecodeOnce decodes a single frame with a fresh receiver.
func DecodeOnce(c *qt.C, d irremote.Decoder, pairs []irremote.TimePair) irremote.Result {
	return Decode(c, Receiver(c, d), 0, pairs)
}
