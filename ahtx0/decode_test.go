// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ahtx0

import (
	"math"
	"testing"
)

const (
	humidityStep    = humiditySpan / codeSpan
	temperatureStep = temperatureSpan / codeSpan
)

// encode packs codes the way the sensor does.
func encode(h, t uint32) RawSample {
	return RawSample{
		0x1C,
		byte(h >> 12),
		byte(h >> 4),
		byte(h<<4) | byte(t>>16)&0x0F,
		byte(t >> 8),
		byte(t),
	}
}

func toCode(v, span float64) uint32 {
	c := math.Round(v / span * codeSpan)
	return uint32(min(max(c, 0), 0xFFFFF))
}

func TestDecode_vectors(t *testing.T) {
	data := []struct {
		name   string
		r      RawSample
		hCode  uint32
		tCode  uint32
		h, tmp float64
	}{
		{"mid scale", RawSample{0x1C, 0x80, 0x00, 0x08, 0x00, 0x00}, 0x80000, 0x80000, 50, 50},
		// Only bits 15..8 of the temperature code are set here.
		{"mid humidity", RawSample{0x1C, 0x80, 0x00, 0x00, 0x80, 0x00}, 0x80000, 0x08000, 50, -43.75},
		{"zero", RawSample{}, 0, 0, 0, -50},
		{"full scale", RawSample{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFF, 0xFFFFF, 100 - humidityStep, 150 - temperatureStep},
		{"status ignored", RawSample{0x00, 0x80, 0x00, 0x08, 0x00, 0x00}, 0x80000, 0x80000, 50, 50},
	}
	for _, line := range data {
		if c := line.r.HumidityCode(); c != line.hCode {
			t.Errorf("%s: humidity code 0x%05x != 0x%05x", line.name, c, line.hCode)
		}
		if c := line.r.TemperatureCode(); c != line.tCode {
			t.Errorf("%s: temperature code 0x%05x != 0x%05x", line.name, c, line.tCode)
		}
		m := Decode(line.r)
		if m.Humidity != line.h || m.Temperature != line.tmp {
			t.Errorf("%s: %v != %.6f°C %.6f%%rH", line.name, m, line.tmp, line.h)
		}
	}
}

func TestDecode_boundaries(t *testing.T) {
	m := Decode(encode(0xFFFFF, 0xFFFFF))
	if math.Abs(m.Humidity-99.99990) > 1e-5 {
		t.Errorf("humidity %.6f", m.Humidity)
	}
	if math.Abs(m.Temperature-149.99981) > 1e-5 {
		t.Errorf("temperature %.6f", m.Temperature)
	}
	m = Decode(encode(0, 0))
	if m.Humidity != 0 || m.Temperature != -50 {
		t.Errorf("unexpected %v", m)
	}
}

func TestDecode_roundTrip(t *testing.T) {
	for h := 0.0; h <= 100; h += 0.37 {
		for tmp := -50.0; tmp <= 150; tmp += 0.73 {
			r := encode(toCode(h, humiditySpan), toCode(tmp-temperatureMin, temperatureSpan))
			m := Decode(r)
			if d := math.Abs(m.Humidity - h); d > humidityStep {
				t.Fatalf("humidity %f decoded as %f", h, m.Humidity)
			}
			if d := math.Abs(m.Temperature - tmp); d > temperatureStep {
				t.Fatalf("temperature %f decoded as %f", tmp, m.Temperature)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	data := []struct {
		in, out Measurement
	}{
		{Measurement{Temperature: 21.5, Humidity: 40}, Measurement{Temperature: 21.5, Humidity: 40}},
		{Measurement{Temperature: -51, Humidity: -0.2}, Measurement{Temperature: -50, Humidity: 0}},
		{Measurement{Temperature: 151, Humidity: 100.01}, Measurement{Temperature: 150, Humidity: 100}},
	}
	for _, line := range data {
		if got := Clamp(line.in); got != line.out {
			t.Errorf("Clamp(%v) = %v, expected %v", line.in, got, line.out)
		}
	}
}

func TestMeasurement_String(t *testing.T) {
	m := Measurement{Temperature: 21.456, Humidity: 40.004}
	if s := m.String(); s != "21.46°C 40.00%rH" {
		t.Fatalf("%q", s)
	}
}

func TestCRC8(t *testing.T) {
	if c := crc8([]byte{0x18, 0x75, 0x52, 0x05, 0x8E, 0x40}); c != 0x7F {
		t.Fatalf("crc 0x%02x", c)
	}
	if c := crc8([]byte{0x1C, 0x80, 0x00, 0x08, 0x00, 0x00}); c != 0xB9 {
		t.Fatalf("crc 0x%02x", c)
	}
	if c := crc8(nil); c != 0xFF {
		t.Fatalf("crc 0x%02x", c)
	}
}
