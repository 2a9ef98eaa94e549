package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/protocols"
)

func TestParseRaw(t *testing.T) {
	c := qt.New(t)
	pairs, err := parseRaw("+9000 -4500 +560")
	c.Assert(err, qt.IsNil)
	c.Assert(pairs, qt.DeepEquals, []irremote.TimePair{
		irremote.Pair(9000, 4500),
		irremote.Pair(560, 0),
	})

	unsigned, err := parseRaw("9000 4500 560")
	c.Assert(err, qt.IsNil)
	c.Assert(unsigned, qt.DeepEquals, pairs)

	_, err = parseRaw("+9000 +4500")
	c.Assert(err, qt.ErrorIs, errSyntax)
	_, err = parseRaw("-9000")
	c.Assert(err, qt.ErrorIs, errSyntax)
	_, err = parseRaw("+9000 -abc")
	c.Assert(err, qt.ErrorIs, errSyntax)
	_, err = parseRaw("   ")
	c.Assert(err, qt.ErrorIs, irremote.ErrLength)
}

func TestFormatRawRoundTrip(t *testing.T) {
	c := qt.New(t)
	pairs, err := protocols.Encode("rc5", 5, 0x35)
	c.Assert(err, qt.IsNil)
	back, err := parseRaw(formatRawPairs(pairs))
	c.Assert(err, qt.IsNil)
	c.Assert(back, qt.DeepEquals, pairs)
}

func TestEncodeThenDecode(t *testing.T) {
	c := qt.New(t)
	for _, format := range []string{formatRaw, formatPirem} {
		c.Run(format, func(c *qt.C) {
			var trace bytes.Buffer
			c.Assert(encode(&trace, "nec:0x04:0x08", format), qt.IsNil)
			c.Assert(encode(&trace, "sony:1:0x15", format), qt.IsNil)
			c.Assert(encode(&trace, "denon:0x08:0xa5", format), qt.IsNil)

			rx, err := irremote.NewReceiver(irremote.Config{}, protocols.Default()...)
			c.Assert(err, qt.IsNil)
			rx.Start()
			results, err := decodeFrames(rx, &trace, format, 200*time.Millisecond)
			c.Assert(err, qt.IsNil)
			c.Assert(results, qt.HasLen, 3)
			c.Assert(results[0].Protocol, qt.Equals, irremote.NEC)
			c.Assert(results[0].Command, qt.Equals, uint16(0x08))
			c.Assert(results[0].Timings, qt.IsNil)
			c.Assert(results[1].Protocol, qt.Equals, irremote.Sony)
			c.Assert(results[2].Protocol, qt.Equals, irremote.Denon)
			c.Assert(results[2].Command, qt.Equals, uint16(0xA5))
		})
	}
}

func TestDecodeFramesSkipsComments(t *testing.T) {
	c := qt.New(t)
	trace := "# recorded on the bench\n\n+6000 -1000 +1000 # junk\n"
	rx, err := irremote.NewReceiver(irremote.Config{}, protocols.Default()...)
	c.Assert(err, qt.IsNil)
	rx.Start()
	results, err := decodeFrames(rx, strings.NewReader(trace), formatRaw, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(results, qt.HasLen, 1)
	c.Assert(results[0].Protocol, qt.Equals, irremote.Unknown)
	c.Assert(results[0].Timings, qt.DeepEquals, []uint32{5980, 1020, 980, 5120})
	c.Assert(formatTimings(results[0].Timings), qt.Equals, "+5980 -1020 +980 -5120")
}

func TestDecodeFramesErrors(t *testing.T) {
	c := qt.New(t)
	rx, err := irremote.NewReceiver(irremote.Config{})
	c.Assert(err, qt.IsNil)
	rx.Start()

	_, err = decodeFrames(rx, strings.NewReader("+1 +2\n"), formatRaw, 0)
	c.Assert(err, qt.ErrorMatches, "line 1: .*")
	_, err = decodeFrames(rx, strings.NewReader("{"), formatPirem, 0)
	c.Assert(err, qt.ErrorIs, errSyntax)
	_, err = decodeFrames(rx, strings.NewReader(""), "csv", 0)
	c.Assert(err, qt.ErrorIs, errSyntax)
}

func TestParseEncodeSpec(t *testing.T) {
	c := qt.New(t)
	name, a, cmd, err := parseEncodeSpec("samsung:0x0707:2")
	c.Assert(err, qt.IsNil)
	c.Assert(name, qt.Equals, "samsung")
	c.Assert(a, qt.Equals, uint16(0x0707))
	c.Assert(cmd, qt.Equals, uint16(2))

	for _, bad := range []string{"nec", "nec:1", "nec:x:1", "nec:1:0x10000"} {
		_, _, _, err := parseEncodeSpec(bad)
		c.Assert(err, qt.ErrorIs, errSyntax, qt.Commentf("%s", bad))
	}
	c.Assert(encode(&bytes.Buffer{}, "bogus:1:1", formatRaw), qt.ErrorIs, irremote.ErrUnknownProtocol)
}

func TestLoadConfig(t *testing.T) {
	c := qt.New(t)
	cfg, err := loadConfig("")
	c.Assert(err, qt.IsNil)
	c.Assert(cfg, qt.DeepEquals, irremote.Config{})

	dir := c.TempDir()
	path := filepath.Join(dir, "rx.json")
	c.Assert(os.WriteFile(path, []byte(`{"tick_period_us": 25, "tolerance_percent": 30, "capacity": 120}`), 0o644), qt.IsNil)
	cfg, err = loadConfig(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.TickPeriod, qt.Equals, 25*time.Microsecond)
	c.Assert(cfg.Tolerance, qt.Equals, 30)
	c.Assert(cfg.Capacity, qt.Equals, 120)
	c.Assert(cfg.FrameGap, qt.Equals, time.Duration(0))

	bad := filepath.Join(dir, "bad.json")
	c.Assert(os.WriteFile(bad, []byte(`{"tick": 1}`), 0o644), qt.IsNil)
	_, err = loadConfig(bad)
	c.Assert(err, qt.ErrorIs, irremote.ErrConfig)

	_, err = loadConfig(filepath.Join(dir, "missing.json"))
	c.Assert(err, qt.ErrorIs, os.ErrNotExist)
}
