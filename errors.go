package irremote

import "errors"

// Decode paths only ever return these values so that a decode pass does not
// allocate.
var (
	// ErrLength is returned when the frame has the wrong number of entries.
	ErrLength = errors.New("irremote: unexpected frame length")
	// ErrHeader is returned when the leading mark/space do not match.
	ErrHeader = errors.New("irremote: header mismatch")
	// ErrTruncated is returned when the frame ends before all bits are read.
	ErrTruncated = errors.New("irremote: frame truncated")
	// ErrMismatch is returned when a duration matches neither bit value.
	ErrMismatch = errors.New("irremote: timing mismatch")
	// ErrOverflow is reported for frames that did not fit the buffer.
	ErrOverflow = errors.New("irremote: capture buffer overflow")
	// ErrUnknownProtocol is reported when every decoder rejected the frame.
	ErrUnknownProtocol = errors.New("irremote: unknown protocol")
	// ErrNotReady is returned when no completed frame is available.
	ErrNotReady = errors.New("irremote: no frame available")
	// ErrConfig wraps invalid receiver configuration.
	ErrConfig = errors.New("irremote: invalid config")
)
