// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ahtx0 controls an AHT10, AHT20 or AHT21 temperature and humidity
// sensor over I²C.
//
// NewI2C soft resets the sensor and waits for its calibration flag, then
// Acquire triggers a measurement, polls the busy flag and decodes the 20 bit
// humidity and temperature codes. Read does both for callers that only want
// one reading. Every delay and attempt count comes from the datasheet and is
// fixed.
//
// Decoded values are not clamped. A humidity slightly outside [0, 100] %rH is
// a legal reading near the ends of the scale; Clamp is available when a caller
// prefers bounded values.
//
// **Datasheet:** http://www.aosong.com/userfiles/files/media/Data%20Sheet%20AHT20.pdf
package ahtx0
