package irremote

// PulseDistanceWidthDecoder decodes any fixed-length frame described by a
// PulseDistanceWidth timing. Split derives address and command from the raw
// value; when nil the low 16 bits are the command and the next 16 the address.
type PulseDistanceWidthDecoder struct {
	Protocol Protocol
	Timing   PulseDistanceWidth
	Bits     int
	Split    func(raw uint64) (address, command uint16)
}

// Decode implements Decoder.
func (d *PulseDistanceWidthDecoder) Decode(f *Frame, r *Result) error {
	raw, err := d.Timing.Decode(f, d.Bits)
	if err != nil {
		return err
	}
	r.Protocol = d.Protocol
	if r.Protocol == Unknown {
		r.Protocol = PulseDistance
		if d.Timing.OneMark != d.Timing.ZeroMark {
			r.Protocol = PulseWidth
		}
	}
	r.Raw = raw
	r.Bits = uint8(d.Bits)
	if d.Split != nil {
		r.Address, r.Command = d.Split(raw)
	} else {
		r.Address, r.Command = uint16(raw>>16), uint16(raw)
	}
	if d.Timing.Order == MSBFirst {
		r.Flags |= FlagMSBFirst
	}
	if d.Timing.RepeatDistance != 0 && f.IsRepeatGap(d.Timing.RepeatDistance) {
		r.Flags |= FlagRepeat
	}
	return nil
}

// MarshalValue encodes raw with the decoder's timing.
func (d *PulseDistanceWidthDecoder) MarshalValue(raw uint64) []TimePair {
	return d.Timing.Encode(make([]TimePair, 0, d.Bits+2), raw, d.Bits)
}
