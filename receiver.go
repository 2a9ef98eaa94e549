package irremote

// Receiver ties one Capture to a Dispatcher. Tick and Edge belong to the
// interrupt side; Available, Decode and Resume to the polling side.
type Receiver struct {
	capture  *Capture
	dispatch *Dispatcher
	matcher  Matcher
	frame    Frame
	last     Result
}

// NewReceiver builds a stopped receiver that tries decoders in order.
func NewReceiver(cfg Config, decoders ...Decoder) (*Receiver, error) {
	cfg = cfg.withDefaults()
	c, err := NewCapture(cfg)
	if err != nil {
		return nil, err
	}
	r := &Receiver{
		capture:  c,
		dispatch: NewDispatcher(decoders...),
		matcher:  cfg.Matcher(),
	}
	r.dispatch.SetLogger(cfg.Logger)
	r.frame = Frame{buf: c.Buffer(), m: r.matcher, tick: cfg.TickPeriod}
	return r, nil
}

// Capture returns the underlying state machine.
func (r *Receiver) Capture() *Capture { return r.capture }

// Dispatcher returns the decoder list.
func (r *Receiver) Dispatcher() *Dispatcher { return r.dispatch }

// Start enables capture.
func (r *Receiver) Start() { r.capture.Start() }

// Stop disables capture.
func (r *Receiver) Stop() { r.capture.Stop() }

// Tick forwards a timer tick to the capture state machine.
func (r *Receiver) Tick(level Level, elapsed uint16) { r.capture.Tick(level, elapsed) }

// Edge forwards a pin transition to the capture state machine.
func (r *Receiver) Edge(level Level, elapsed uint16) { r.capture.Edge(level, elapsed) }

// Available reports whether a frame is ready for Decode.
func (r *Receiver) Available() bool { return r.capture.Available() }

// Frame returns the view of the captured frame. Only valid while Available.
func (r *Receiver) Frame() *Frame { return &r.frame }

// Decode runs one decode pass over the available frame. ok is false when no
// frame is ready. Overflowed frames are never handed to decoders and come
// back Unknown with FlagOverflow. The frame stays in place until Resume.
func (r *Receiver) Decode() (res Result, ok bool) {
	switch r.capture.State() {
	case StateFrameComplete:
	case StateOverflowed:
		return Result{
			Protocol: Unknown,
			Bits:     uint8(min(r.capture.Buffer().Len(), 0xFF)),
			Flags:    FlagOverflow,
			Err:      ErrOverflow,
		}, true
	default:
		return Result{Err: ErrNotReady}, false
	}
	r.frame.last = r.last
	res = r.dispatch.Decode(&r.frame)
	if res.Known() {
		r.last = res
	}
	return res, true
}

// Resume discards the current frame and arms capture for the next one.
func (r *Receiver) Resume() { r.capture.Resume() }
