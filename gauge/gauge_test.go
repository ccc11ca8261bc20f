// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gauge

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: &buf, Width: 10})
	require.NoError(t, d.Render(ahtx0.Measurement{Temperature: 23.456, Humidity: 41.2}))
	out := buf.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "23.46 °C")
	assert.Contains(t, lines[1], "41.20 %RH")
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "\r\033[0m"), "%q", l)
	}
	require.NoError(t, d.Halt())
	assert.True(t, strings.HasSuffix(buf.String(), "\033[0m"))
}

func TestRender_outOfScale(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: &buf})
	require.NoError(t, d.Render(ahtx0.Measurement{Temperature: -60, Humidity: 100.2}))
	assert.Contains(t, buf.String(), "-60.00 °C")
	assert.Contains(t, buf.String(), "100.20 %RH")
}

func TestNew_defaults(t *testing.T) {
	d := New(&Opts{})
	assert.Equal(t, 20, d.width)
	assert.NotNil(t, d.w)
	assert.Equal(t, "Gauge", d.String())
}

func TestFilled(t *testing.T) {
	assert.Equal(t, 0, filled(fraction(-50, MinTemperature, MaxTemperature), 20))
	assert.Equal(t, 20, filled(fraction(150, MinTemperature, MaxTemperature), 20))
	assert.Equal(t, 10, filled(fraction(50, MinTemperature, MaxTemperature), 20))
	assert.Equal(t, 20, filled(fraction(120, 0, 100), 20))
	assert.Equal(t, 0, filled(fraction(-3, 0, 100), 20))
}

func TestMix(t *testing.T) {
	assert.Equal(t, cold, mix(cold, hot, 0))
	assert.Equal(t, hot, mix(cold, hot, 1))
	assert.Equal(t, color.NRGBA{0x80, 0x80, 0x80, 255}, mix(color.NRGBA{0, 0, 0, 255}, color.NRGBA{0xFF, 0xFF, 0xFF, 255}, 0.5))
}
