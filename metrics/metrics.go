// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package metrics exports the outcome of one AHTx0 acquisition in the
// Prometheus text format, for node_exporter's textfile collector.
package metrics

import (
	"time"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/prometheus/client_golang/prometheus"
)

// Reading is the outcome of one acquisition.
type Reading struct {
	Measurement ahtx0.Measurement
	Err         error
	Time        time.Time
}

// Registry returns a registry holding the gauges for r.
//
// The temperature and humidity gauges are only registered when r.Err is nil
// so a failed acquisition never exports stale or partial values.
func Registry(r Reading) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	up := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ahtx0_up",
		Help: "Whether the last acquisition succeeded.",
	})
	last := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ahtx0_last_read_timestamp_seconds",
		Help: "Unix time of the last acquisition.",
	})
	reg.MustRegister(up, last)
	last.Set(float64(r.Time.UnixNano()) / 1e9)

	if r.Err != nil {
		failure := prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ahtx0_read_error",
				Help: "Class of the error that failed the last acquisition.",
			},
			[]string{"kind"},
		)
		reg.MustRegister(failure)
		failure.With(prometheus.Labels{"kind": ahtx0.Kind(r.Err).String()}).Set(1)
		return reg
	}

	temperature := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ahtx0_temperature_celsius",
		Help: "Temperature in degrees Celsius.",
	})
	humidity := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ahtx0_humidity_percent",
		Help: "Relative humidity in percent.",
	})
	reg.MustRegister(temperature, humidity)
	up.Set(1)
	temperature.Set(r.Measurement.Temperature)
	humidity.Set(r.Measurement.Humidity)
	return reg
}

// WriteTextfile atomically replaces path with the metrics for r.
func WriteTextfile(path string, r Reading) error {
	return prometheus.WriteToTextfile(path, Registry(r))
}
