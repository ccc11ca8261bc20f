// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ahtx0

// State is a step of the reset, calibrate, trigger and read sequence.
type State int

const (
	StateReset State = iota
	StateAwaitingCalibration
	StateCalibrated
	StateTriggered
	StateAwaitingReady
	StateReady
	StateDecoded
)

var stateNames = [...]string{
	StateReset:               "reset",
	StateAwaitingCalibration: "awaiting calibration",
	StateCalibrated:          "calibrated",
	StateTriggered:           "triggered",
	StateAwaitingReady:       "awaiting ready",
	StateReady:               "ready",
	StateDecoded:             "decoded",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
