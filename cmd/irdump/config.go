package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sparques/irremote"
)

// fileConfig is the JSON form of irremote.Config. Durations are in
// microseconds; zero or missing fields keep their defaults.
type fileConfig struct {
	TickPeriodMicros     int `json:"tick_period_us"`
	FrameGapMicros       int `json:"frame_gap_us"`
	TrailingMarginMicros int `json:"trailing_margin_us"`
	MarkExcessMicros     int `json:"mark_excess_us"`
	Tolerance            int `json:"tolerance_percent"`
	ToleranceFloorMicros int `json:"tolerance_floor_us"`
	Capacity             int `json:"capacity"`
}

func (fc fileConfig) config() irremote.Config {
	us := func(n int) time.Duration { return time.Duration(n) * time.Microsecond }
	return irremote.Config{
		TickPeriod:     us(fc.TickPeriodMicros),
		FrameGap:       us(fc.FrameGapMicros),
		TrailingMargin: us(fc.TrailingMarginMicros),
		MarkExcess:     us(fc.MarkExcessMicros),
		Tolerance:      fc.Tolerance,
		ToleranceFloor: us(fc.ToleranceFloorMicros),
		Capacity:       fc.Capacity,
	}
}

// loadConfig reads a JSON config file. An empty path yields the defaults.
func loadConfig(path string) (irremote.Config, error) {
	if path == "" {
		return irremote.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return irremote.Config{}, err
	}
	defer f.Close()

	var fc fileConfig
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return irremote.Config{}, fmt.Errorf("%w: %s: %v", irremote.ErrConfig, path, err)
	}
	return fc.config(), nil
}
