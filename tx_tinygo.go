//go:build tinygo

package irremote

import (
	"context"
	"machine"
	"time"

	"github.com/sparques/pwm"
)

// TxDevice drives an IR LED on a PWM pin. The carrier runs at 50% duty
// during marks and is off during spaces.
type TxDevice struct {
	pin    machine.Pin
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	freq   uint64
}

// NewTxDevice configures pin for a 38 kHz carrier.
func NewTxDevice(pin machine.Pin) (*TxDevice, error) {
	pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	tx := &TxDevice{pin: pin, pgroup: pwm.Get(pin)}
	if err := tx.SetFrequency(Freq38Khz); err != nil {
		return nil, err
	}
	return tx, nil
}

// SetFrequency changes the carrier frequency in Hz, e.g. sony.ModulationFrequency.
func (tx *TxDevice) SetFrequency(freq uint64) error {
	if freq == 0 {
		return ErrConfig
	}
	tx.pgroup.Configure(machine.PWMConfig{Period: uint64(1e9) / freq})
	ch, err := tx.pgroup.Channel(tx.pin)
	if err != nil {
		return err
	}
	tx.pgroup.Set(ch, 0)
	tx.ch = ch
	tx.duty = tx.pgroup.Top() / 2
	tx.freq = freq
	return nil
}

// Frequency returns the carrier frequency in Hz.
func (tx *TxDevice) Frequency() uint64 { return tx.freq }

func (tx *TxDevice) SendPair(pair TimePair) {
	tx.pgroup.Set(tx.ch, tx.duty)
	time.Sleep(pair[0])
	tx.pgroup.Set(tx.ch, 0)
	time.Sleep(pair[1])
}

func (tx *TxDevice) SendPairs(pairs ...TimePair) {
	for _, p := range pairs {
		tx.SendPair(p)
	}
}

// Send transmits pairs, stopping between pairs once ctx is done. It fits
// pirem.TransmitterFunc.
func (tx *TxDevice) Send(ctx context.Context, pairs []TimePair) error {
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		tx.SendPair(p)
	}
	return nil
}

func (tx *TxDevice) SendFrame(fm FrameMarshaller) {
	tx.SendPairs(fm.MarshalFrame()...)
}

func (tx *TxDevice) SendFrames(fms ...FrameMarshaller) {
	for _, fm := range fms {
		tx.SendFrame(fm)
	}
}
