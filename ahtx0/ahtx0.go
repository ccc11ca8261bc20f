// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ahtx0

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DeviceAddress is the fixed 7-bit I²C address of the AHT10, AHT20 and AHT21.
const DeviceAddress uint16 = 0x38

const (
	cmdSoftReset byte = 0xBA
	cmdMeasure   byte = 0xAC
)

var argsMeasure = []byte{cmdMeasure, 0x33, 0x00}

// Timings from the datasheet. They are part of the protocol, not tuning knobs.
const (
	resetDelay   = 20 * time.Millisecond
	measureDelay = 80 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	pollAttempts = 10
)

const (
	statusLength = 1
	sampleLength = 6
	// sampleLength plus the trailing CRC8 byte.
	frameLength = 7
)

// Status is the status byte returned by a plain one byte read.
type Status byte

const (
	bitBusy       Status = 1 << 7
	bitCalibrated Status = 1 << 3
)

// Busy reports whether a measurement is still in progress.
func (s Status) Busy() bool {
	return s&bitBusy != 0
}

// Calibrated reports whether the device loaded its calibration coefficients.
func (s Status) Calibrated() bool {
	return s&bitCalibrated != 0
}

// Opts holds the configuration options for the device.
type Opts struct {
	// ValidateData reads the CRC8 byte the AHT20 appends to a measurement and
	// returns a DataCorruptionError on mismatch. The AHT10 has no CRC byte, so
	// the default is false and a measurement is read as exactly 6 bytes.
	ValidateData bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{}

// Dev is a handle to an initialized and calibrated AHTx0 sensor.
//
// A Dev must not be shared between two buses and every call holds the
// device for the whole exchange, so concurrent callers are serialized.
type Dev struct {
	d     *i2c.Dev
	opts  Opts
	sleep func(time.Duration)
	mu    sync.Mutex
}

// NewI2C soft resets the sensor found on b and waits until it reports its
// calibration as loaded. The Opts can be nil.
//
// It fails with a CalibrationError if the calibrated bit is not set after 10
// status reads, and with a BusError on any I²C failure.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	return newDev(b, opts, time.Sleep)
}

func newDev(b i2c.Bus, opts *Opts, sleep func(time.Duration)) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: DeviceAddress}, opts: *opts, sleep: sleep}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.softReset(); err != nil {
		return nil, err
	}
	if err := d.waitCalibrated(); err != nil {
		return nil, err
	}
	return d, nil
}

// Read initializes the sensor on b and acquires a single measurement.
//
// Each call is self-contained: the sensor is reset and calibration is
// checked every time. Nothing is cached between calls.
func Read(b i2c.Bus, opts *Opts) (Measurement, error) {
	d, err := NewI2C(b, opts)
	if err != nil {
		return Measurement{}, err
	}
	return d.Acquire()
}

// Acquire triggers a measurement, waits for the sensor to finish it and
// returns the decoded result.
//
// The first status read happens 80ms after the trigger. If the sensor is
// still busy after 10 status reads 10ms apart, a BusyError is returned.
func (d *Dev) Acquire() (Measurement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.d.Tx(argsMeasure, nil); err != nil {
		return Measurement{}, &BusError{Op: "trigger", State: StateCalibrated, Err: err}
	}
	d.sleep(measureDelay)

	for i := 0; i < pollAttempts; i++ {
		s, err := d.status(StateAwaitingReady)
		if err != nil {
			return Measurement{}, err
		}
		if !s.Busy() {
			r, err := d.readSample()
			if err != nil {
				return Measurement{}, err
			}
			return Decode(r), nil
		}
		d.sleep(pollInterval)
	}
	return Measurement{}, &BusyError{Attempts: pollAttempts}
}

// Sense acquires a measurement and stores it in e in periph units. The
// pressure is always 0 since the sensor does not measure it.
func (d *Dev) Sense(e *physic.Env) error {
	m, err := d.Acquire()
	if err != nil {
		return err
	}
	*e = m.Env()
	return nil
}

// Precision returns the size of one raw code step.
func (d *Dev) Precision(e *physic.Env) {
	k, rh := float64(physic.Kelvin), float64(physic.PercentRH)
	e.Temperature = physic.Temperature(temperatureSpan / codeSpan * k)
	e.Humidity = physic.RelativeHumidity(humiditySpan / codeSpan * rh)
	e.Pressure = 0
}

// Halt implements conn.Resource. The driver runs nothing in the background so
// there is nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ahtx0{%s}", d.d)
}

func (d *Dev) softReset() error {
	if err := d.d.Tx([]byte{cmdSoftReset}, nil); err != nil {
		return &BusError{Op: "reset", State: StateReset, Err: err}
	}
	d.sleep(resetDelay) // wait for 20ms according to datasheet
	return nil
}

func (d *Dev) waitCalibrated() error {
	for i := 0; i < pollAttempts; i++ {
		s, err := d.status(StateAwaitingCalibration)
		if err != nil {
			return err
		}
		if s.Calibrated() {
			return nil
		}
		d.sleep(pollInterval)
	}
	return &CalibrationError{Attempts: pollAttempts}
}

func (d *Dev) status(state State) (Status, error) {
	var b [statusLength]byte
	if err := d.d.Tx(nil, b[:]); err != nil {
		return 0, &BusError{Op: "status", State: state, Err: err}
	}
	return Status(b[0]), nil
}

func (d *Dev) readSample() (RawSample, error) {
	var r RawSample
	n := sampleLength
	if d.opts.ValidateData {
		n = frameLength
	}
	var buf [frameLength]byte
	if err := d.d.Tx(nil, buf[:n]); err != nil {
		return r, &BusError{Op: "read", State: StateReady, Err: err}
	}
	if d.opts.ValidateData && crc8(buf[:sampleLength]) != buf[sampleLength] {
		return r, &DataCorruptionError{Got: buf[sampleLength], Want: crc8(buf[:sampleLength])}
	}
	copy(r[:], buf[:sampleLength])
	return r, nil
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
