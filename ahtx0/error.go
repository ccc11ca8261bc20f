// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ahtx0

import (
	"errors"
	"fmt"
)

var (
	// ErrCalibrationFailed matches any CalibrationError.
	ErrCalibrationFailed = errors.New("ahtx0: sensor could not be calibrated")
	// ErrStillBusy matches any BusyError.
	ErrStillBusy = errors.New("ahtx0: sensor is still busy")
)

// BusError is returned when an I²C transaction fails. The protocol is
// aborted at the first failure; the cause is kept in Err.
type BusError struct {
	// Op is the failed transaction: "reset", "status", "trigger" or "read".
	Op string
	// State is the step the sequence was in when the transaction failed.
	State State
	Err   error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("ahtx0: I²C %s failed while %s: %v", e.Op, e.State, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

// CalibrationError is returned when the calibrated bit stays clear after a
// soft reset.
type CalibrationError struct {
	Attempts int
}

func (e *CalibrationError) Error() string {
	return fmt.Sprintf("ahtx0: sensor not calibrated after %d status reads", e.Attempts)
}

func (e *CalibrationError) Is(target error) bool {
	return target == ErrCalibrationFailed
}

// BusyError is returned when the busy bit stays set after a measurement was
// triggered.
type BusyError struct {
	Attempts int
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("ahtx0: sensor still busy after %d status reads", e.Attempts)
}

func (e *BusyError) Is(target error) bool {
	return target == ErrStillBusy
}

// DataCorruptionError is returned when Opts.ValidateData is set and the
// CRC8 byte does not match the measurement.
type DataCorruptionError struct {
	Got, Want byte
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("ahtx0: data is corrupt, crc 0x%02x != 0x%02x", e.Got, e.Want)
}

// ErrorKind classifies the errors returned by this package.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindCommunication
	KindCalibration
	KindBusy
	KindDataCorruption
	// KindUnknown is an error that did not come from this package.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCommunication:
		return "communication"
	case KindCalibration:
		return "calibration"
	case KindBusy:
		return "busy"
	case KindDataCorruption:
		return "data corruption"
	default:
		return "unknown"
	}
}

// Kind returns the class of err. A nil error is KindNone.
func Kind(err error) ErrorKind {
	var (
		busErr  *BusError
		corrupt *DataCorruptionError
	)
	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &busErr):
		return KindCommunication
	case errors.Is(err, ErrCalibrationFailed):
		return KindCalibration
	case errors.Is(err, ErrStillBusy):
		return KindBusy
	case errors.As(err, &corrupt):
		return KindDataCorruption
	default:
		return KindUnknown
	}
}
