// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the AHTx0 temperature and humidity
// driver and the tools built on it.
//
// The driver lives in ahtx0. gauge, card and metrics present a reading on a
// terminal, as an image and as Prometheus metrics; cmd/ahtx0 ties them
// together.
package devices
