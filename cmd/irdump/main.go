// Command irdump decodes recorded IR traces with the default protocol list,
// or prints the encoded frame of a command.
//
// Usage:
//
//	irdump [-format raw|pirem] [-config cfg.json] [-gap 200ms] [-ppm] [-v] [trace ...]
//	irdump -encode nec:0x04:0x08 [-format raw|pirem]
//
// Raw traces hold one frame per line, e.g. "+9000 -4500 +560 -560 ... +560".
// Without trace files stdin is read.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/ppm"
	"github.com/sparques/irremote/protocols"
)

func main() {
	format := flag.String("format", formatRaw, "trace format: raw or pirem")
	cfgPath := flag.String("config", "", "JSON receiver configuration")
	gap := flag.Duration("gap", 200*time.Millisecond, "idle time replayed before each frame")
	withPPM := flag.Bool("ppm", false, "also try PPM channel frames")
	encodeSpec := flag.String("encode", "", "print the frame for proto:address:command ("+strings.Join(protocols.Names(), ", ")+")")
	verbose := flag.Bool("v", false, "log rejected decoders")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *encodeSpec != "" {
		if err := encode(os.Stdout, *encodeSpec, *format); err != nil {
			log.WithError(err).Fatal("encode failed")
		}
		return
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.WithError(err).Fatal("cannot load config")
	}
	cfg.Logger = log.StandardLogger()

	decoders := protocols.Default()
	if *withPPM {
		decoders = protocols.WithPPM(ppm.NewDecoder())
	}
	rx, err := irremote.NewReceiver(cfg, decoders...)
	if err != nil {
		log.WithError(err).Fatal("cannot build receiver")
	}
	rx.Start()

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		if err := dumpFile(rx, name, *format, *gap); err != nil {
			log.WithError(err).WithField("file", name).Fatal("decode failed")
		}
	}
}

func dumpFile(rx *irremote.Receiver, name, format string, gap time.Duration) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	results, err := decodeFrames(rx, r, format, gap)
	for i, res := range results {
		logResult(log.WithFields(log.Fields{"file": name, "frame": i}), res)
	}
	return err
}

func logResult(entry *log.Entry, res decoded) {
	entry = entry.WithFields(log.Fields{
		"protocol": res.Protocol.String(),
		"bits":     res.Bits,
		"flags":    res.Flags.String(),
	})
	if !res.Known() {
		entry.WithFields(log.Fields{
			"hash":    fmt.Sprintf("%#08x", res.Raw),
			"timings": formatTimings(res.Timings),
		}).WithError(res.Err).Warn("unknown frame")
		return
	}
	entry = entry.WithFields(log.Fields{
		"address": fmt.Sprintf("%#04x", res.Address),
		"command": fmt.Sprintf("%#04x", res.Command),
		"raw":     fmt.Sprintf("%#x", res.Raw),
	})
	if res.Flags.Has(irremote.FlagExtraInfo) {
		entry = entry.WithField("extra", fmt.Sprintf("%#04x", res.Extra))
	}
	entry.Info("decoded")
}
