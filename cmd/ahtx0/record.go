// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"github.com/GermanBionicSystems/ahtx0/ahtx0"
)

// Status codes of a Record. Zero is success, every failure is negative.
const (
	statusOK             int32 = 0
	statusCommunication  int32 = -1
	statusCalibration    int32 = -2
	statusBusy           int32 = -3
	statusDataCorruption int32 = -4
)

// invalidReading fills both values of a failed Record so that a consumer
// ignoring StatusCode still cannot mistake it for a real reading.
const invalidReading = 1000.0

// Record is the stable, flat form of one acquisition handed to scripts and
// other languages: two floats and a status code, plus the error text.
type Record struct {
	Temperature float64 `json:"temperature" yaml:"temperature"`
	Humidity    float64 `json:"humidity" yaml:"humidity"`
	StatusCode  int32   `json:"status_code" yaml:"status_code"`
	Message     string  `json:"message,omitempty" yaml:"message,omitempty"`
}

func newRecord(m ahtx0.Measurement, err error) Record {
	if err != nil {
		return Record{
			Temperature: invalidReading,
			Humidity:    invalidReading,
			StatusCode:  statusCode(err),
			Message:     err.Error(),
		}
	}
	return Record{Temperature: m.Temperature, Humidity: m.Humidity, StatusCode: statusOK}
}

func statusCode(err error) int32 {
	switch ahtx0.Kind(err) {
	case ahtx0.KindNone:
		return statusOK
	case ahtx0.KindCalibration:
		return statusCalibration
	case ahtx0.KindBusy:
		return statusBusy
	case ahtx0.KindDataCorruption:
		return statusDataCorruption
	default:
		// Bus failures and anything raised before the sensor was reached.
		return statusCommunication
	}
}
