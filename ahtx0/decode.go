// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ahtx0

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

const (
	// codeSpan is 2^20, one past the largest 20 bit raw code.
	codeSpan        = 1048576.0
	humiditySpan    = 100.0
	temperatureSpan = 200.0
	temperatureMin  = -50.0
)

// RawSample is the 6 byte answer to a measurement read.
//
// Byte 0 is the status byte. Bytes 1 to 3 hold the 20 bit humidity code,
// most significant bits first, and its low nibble is followed by the 20 bit
// temperature code in the rest of byte 3 and bytes 4 and 5.
type RawSample [6]byte

// Status returns the status byte captured with the sample.
func (r RawSample) Status() Status {
	return Status(r[0])
}

// HumidityCode returns the raw 20 bit humidity code.
func (r RawSample) HumidityCode() uint32 {
	return uint32(r[1])<<12 | uint32(r[2])<<4 | uint32(r[3])>>4
}

// TemperatureCode returns the raw 20 bit temperature code.
func (r RawSample) TemperatureCode() uint32 {
	return (uint32(r[3])&0x0F)<<16 | uint32(r[4])<<8 | uint32(r[5])
}

// Measurement is a decoded reading.
type Measurement struct {
	// Temperature in degrees Celsius.
	Temperature float64
	// Humidity in percent relative humidity.
	Humidity float64
}

// Env converts m into periph units. Pressure is left at 0.
func (m Measurement) Env() physic.Env {
	return physic.Env{
		Temperature: physic.Temperature(m.Temperature*float64(physic.Kelvin)) + physic.ZeroCelsius,
		Humidity:    physic.RelativeHumidity(m.Humidity * float64(physic.PercentRH)),
	}
}

func (m Measurement) String() string {
	return fmt.Sprintf("%.2f°C %.2f%%rH", m.Temperature, m.Humidity)
}

// Decode converts a raw sample into physical units. The status byte is
// ignored.
//
// The result is not clamped: codes near either end of the scale may yield a
// humidity a little outside [0, 100]. Use Clamp if that is not wanted.
func Decode(r RawSample) Measurement {
	return Measurement{
		Temperature: float64(r.TemperatureCode())/codeSpan*temperatureSpan + temperatureMin,
		Humidity:    float64(r.HumidityCode()) / codeSpan * humiditySpan,
	}
}

// Clamp limits humidity to [0, 100] %rH and temperature to the sensor's
// [-50, 150] °C code range.
func Clamp(m Measurement) Measurement {
	m.Humidity = min(max(m.Humidity, 0), humiditySpan)
	m.Temperature = min(max(m.Temperature, temperatureMin), temperatureMin+temperatureSpan)
	return m
}
