package irremote

// Matcher classifies measured durations against expected ones.
// All values are in microseconds.
type Matcher struct {
	// Tolerance is the accepted deviation in percent of the expected value.
	Tolerance int
	// Floor is the minimum accepted deviation, for very short durations.
	Floor uint32
	// MarkExcess is how much longer than sent a receiver reports marks.
	// Spaces are reported shorter by the same amount.
	MarkExcess uint32
}

// DefaultMatcher is the matcher of DefaultConfig.
var DefaultMatcher = Matcher{Tolerance: 25, Floor: 50, MarkExcess: 20}

// Match reports whether |measured - expected| <= max(Tolerance% of expected, Floor).
// The bound is inclusive.
func (m Matcher) Match(measured, expected uint32) bool {
	return m.match(int64(measured), int64(expected))
}

// MatchMark matches a mark, compensating for receiver lag.
func (m Matcher) MatchMark(measured, expected uint32) bool {
	return m.match(int64(measured), int64(expected)+int64(m.MarkExcess))
}

// MatchSpace matches a space, compensating for receiver lag.
func (m Matcher) MatchSpace(measured, expected uint32) bool {
	return m.match(int64(measured), int64(expected)-int64(m.MarkExcess))
}

func (m Matcher) match(measured, expected int64) bool {
	band := expected * int64(m.Tolerance) / 100
	if band < int64(m.Floor) {
		band = int64(m.Floor)
	}
	diff := measured - expected
	if diff < 0 {
		diff = -diff
	}
	return diff <= band
}
