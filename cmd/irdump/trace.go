package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	plugin "github.com/NaKa2355/pirem/pkg/driver_module/v1"

	"github.com/sparques/irremote"
	"github.com/sparques/irremote/pirem"
	"github.com/sparques/irremote/protocols"
)

const (
	formatRaw   = "raw"
	formatPirem = "pirem"
)

var errSyntax = errors.New("irdump: bad trace syntax")

// parseRaw reads one frame of whitespace separated microsecond durations,
// alternating mark and space. A leading + or - must agree with the
// position.
func parseRaw(line string) ([]irremote.TimePair, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, irremote.ErrLength
	}
	pairs := make([]irremote.TimePair, 0, (len(fields)+1)/2)
	for i, field := range fields {
		mark := i%2 == 0
		switch {
		case strings.HasPrefix(field, "+"):
			if !mark {
				return nil, fmt.Errorf("%w: %q at %d should be a space", errSyntax, field, i)
			}
			field = field[1:]
		case strings.HasPrefix(field, "-"):
			if mark {
				return nil, fmt.Errorf("%w: %q at %d should be a mark", errSyntax, field, i)
			}
			field = field[1:]
		}
		n, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errSyntax, err)
		}
		d := time.Duration(n) * time.Microsecond
		if mark {
			pairs = append(pairs, irremote.TimePair{d, 0})
		} else {
			pairs[len(pairs)-1][1] = d
		}
	}
	return pairs, nil
}

// formatRawPairs renders pairs the way parseRaw reads them.
func formatRawPairs(pairs []irremote.TimePair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "+%d", p[0]/time.Microsecond)
		if p[1] != 0 {
			fmt.Fprintf(&sb, " -%d", p[1]/time.Microsecond)
		}
	}
	return sb.String()
}

// readFrames calls fn for every frame in r. Raw traces hold one frame per
// line with # comments; pirem traces are a stream of IRData JSON objects.
func readFrames(r io.Reader, format string, fn func([]irremote.TimePair) error) error {
	switch format {
	case formatRaw:
		sc := bufio.NewScanner(r)
		for n := 1; sc.Scan(); n++ {
			line, _, _ := strings.Cut(sc.Text(), "#")
			if strings.TrimSpace(line) == "" {
				continue
			}
			pairs, err := parseRaw(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", n, err)
			}
			if err := fn(pairs); err != nil {
				return err
			}
		}
		return sc.Err()
	case formatPirem:
		dec := json.NewDecoder(r)
		for {
			var data plugin.IRData
			err := dec.Decode(&data)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("%w: %v", errSyntax, err)
			}
			pairs, err := pirem.FromIRData(&data)
			if err != nil {
				return err
			}
			if err := fn(pairs); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("%w: unknown format %q", errSyntax, format)
}

// decoded is one decode pass. Unknown frames keep their timings, with
// the receiver's mark excess removed, for inspection.
type decoded struct {
	irremote.Result
	Timings []uint32
}

// decodeFrames replays every frame of r through rx, separated by gap.
func decodeFrames(rx *irremote.Receiver, r io.Reader, format string, gap time.Duration) ([]decoded, error) {
	var out []decoded
	err := readFrames(r, format, func(pairs []irremote.TimePair) error {
		rx.Capture().Wait(gap)
		rx.Capture().Replay(pairs...)
		defer rx.Resume()
		res, ok := rx.Decode()
		if !ok {
			return res.Err
		}
		d := decoded{Result: res}
		if !res.Known() {
			d.Timings = make([]uint32, rx.Frame().Len())
			d.Timings = d.Timings[:rx.Frame().CopyMicros(d.Timings)]
		}
		out = append(out, d)
		return nil
	})
	return out, err
}

// formatTimings renders alternating mark and space durations starting with
// a mark, in the raw trace syntax.
func formatTimings(us []uint32) string {
	var sb strings.Builder
	for i, d := range us {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sign := byte('+')
		if i%2 == 1 {
			sign = '-'
		}
		sb.WriteByte(sign)
		sb.WriteString(strconv.FormatUint(uint64(d), 10))
	}
	return sb.String()
}

// parseEncodeSpec splits "proto:address:command"; numbers take Go prefixes.
func parseEncodeSpec(spec string) (name string, address, command uint16, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return "", 0, 0, fmt.Errorf("%w: want proto:address:command, got %q", errSyntax, spec)
	}
	a, err := strconv.ParseUint(parts[1], 0, 16)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: address: %v", errSyntax, err)
	}
	c, err := strconv.ParseUint(parts[2], 0, 16)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: command: %v", errSyntax, err)
	}
	return parts[0], uint16(a), uint16(c), nil
}

// encode writes the frame for spec to w in the given format.
func encode(w io.Writer, spec, format string) error {
	name, address, command, err := parseEncodeSpec(spec)
	if err != nil {
		return err
	}
	pairs, err := protocols.Encode(name, address, command)
	if err != nil {
		return err
	}
	switch format {
	case formatRaw:
		_, err = fmt.Fprintln(w, formatRawPairs(pairs))
		return err
	case formatPirem:
		return json.NewEncoder(w).Encode(pirem.ToIRData(pairs))
	}
	return fmt.Errorf("%w: unknown format %q", errSyntax, format)
}
