// Package pirem connects irremote to the pirem driver module interface.
// pirem hands IR data around as alternating mark and space durations in
// nanoseconds.
package pirem

import (
	"context"
	"errors"
	"math"
	"time"

	plugin "github.com/NaKa2355/pirem/pkg/driver_module/v1"

	"github.com/sparques/irremote"
)

// FromIRData converts pirem pulses into pairs. An odd count leaves the last
// pair with a zero space.
func FromIRData(data *plugin.IRData) ([]irremote.TimePair, error) {
	if data == nil || len(data.PluseNanoSec) == 0 {
		return nil, irremote.ErrLength
	}
	pulses := data.PluseNanoSec
	pairs := make([]irremote.TimePair, 0, (len(pulses)+1)/2)
	for i := 0; i < len(pulses); i += 2 {
		var p irremote.TimePair
		p[0] = durationOf(pulses[i])
		if i+1 < len(pulses) {
			p[1] = durationOf(pulses[i+1])
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

// ToIRData flattens pairs into pirem pulses. The zero space ending a frame
// is dropped; durations beyond the uint32 range saturate.
func ToIRData(pairs []irremote.TimePair) *plugin.IRData {
	pulses := make([]uint32, 0, 2*len(pairs))
	for i, p := range pairs {
		pulses = append(pulses, nanosOf(p[0]))
		if p[1] == 0 && i == len(pairs)-1 {
			break
		}
		pulses = append(pulses, nanosOf(p[1]))
	}
	return &plugin.IRData{PluseNanoSec: pulses}
}

func durationOf(ns uint32) time.Duration {
	return time.Duration(ns)
}

func nanosOf(d time.Duration) uint32 {
	if d < 0 {
		return 0
	}
	if d > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(d)
}

// Decode replays data through rx and decodes the resulting frame. rx is
// resumed before returning.
func Decode(rx *irremote.Receiver, data *plugin.IRData) (irremote.Result, error) {
	pairs, err := FromIRData(data)
	if err != nil {
		return irremote.Result{}, ConvertErr(err)
	}
	rx.Capture().Replay(pairs...)
	defer rx.Resume()
	res, ok := rx.Decode()
	if !ok {
		return res, ConvertErr(res.Err)
	}
	return res, nil
}

// Transmitter sends pairs on some IR output.
type Transmitter interface {
	SendPairs(ctx context.Context, pairs []irremote.TimePair) error
}

// TransmitterFunc adapts a function to Transmitter.
type TransmitterFunc func(ctx context.Context, pairs []irremote.TimePair) error

func (f TransmitterFunc) SendPairs(ctx context.Context, pairs []irremote.TimePair) error {
	return f(ctx, pairs)
}

// Device exposes a Transmitter as a pirem sender device.
type Device struct {
	tx   Transmitter
	info plugin.DeviceInfo
}

var _ plugin.Device = &Device{}
var _ plugin.Sender = &Device{}

func NewDevice(tx Transmitter) *Device {
	dev := &Device{tx: tx}
	dev.info.FirmwareVersion = "0.1.0"
	dev.info.DriverVersion = "0.1.0"
	return dev
}

func (dev *Device) GetInfo(ctx context.Context) (*plugin.DeviceInfo, error) {
	return &dev.info, nil
}

func (dev *Device) Drop() error {
	return nil
}

func (dev *Device) SendIR(ctx context.Context, irData *plugin.IRData) error {
	pairs, err := FromIRData(irData)
	if err != nil {
		return ConvertErr(err)
	}
	return ConvertErr(dev.tx.SendPairs(ctx, pairs))
}

// ConvertErr maps irremote errors onto pirem error codes.
func ConvertErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, irremote.ErrLength),
		errors.Is(err, irremote.ErrOverflow),
		errors.Is(err, irremote.ErrNotReady):
		return plugin.WrapErr(plugin.CodeInvaildInput, err)
	case errors.Is(err, context.DeadlineExceeded):
		return plugin.WrapErr(plugin.CodeTimeout, err)
	default:
		return plugin.WrapErr(plugin.CodeUnknown, err)
	}
}
