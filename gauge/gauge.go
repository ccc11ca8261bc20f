// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gauge draws an AHTx0 measurement on a terminal as two coloured
// bars, one for temperature and one for relative humidity, using ANSI 256
// colour codes.
//
// Useful when the sensor sits on a headless board and all you have is ssh.
package gauge

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
)

// Scale of the temperature bar. It matches the sensor's code range.
const (
	MinTemperature = -50.0
	MaxTemperature = 150.0
)

// Opts represents the options available for this display.
type Opts struct {
	// Width is the number of cells of each bar. Defaults to 20.
	Width   int
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev renders measurements to a terminal.
type Dev struct {
	w       io.Writer
	width   int
	palette ansi256.Palette

	buf bytes.Buffer
}

var (
	empty = color.NRGBA{0x30, 0x30, 0x30, 255}
	dry   = color.NRGBA{0xD2, 0xB4, 0x8C, 255}
	wet   = color.NRGBA{0x1E, 0x5A, 0xFF, 255}
	cold  = color.NRGBA{0x00, 0x60, 0xFF, 255}
	hot   = color.NRGBA{0xFF, 0x30, 0x00, 255}
)

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	width := opts.Width
	if width <= 0 {
		width = 20
	}
	return &Dev{w: w, width: width, palette: *p}
}

func (d *Dev) String() string {
	return "Gauge"
}

// Halt implements conn.Resource.
//
// It resets the terminal colours so the prompt is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

// Render writes one line per quantity.
//
// Values outside the scale are drawn as an empty or full bar; the printed
// value is never altered.
func (d *Dev) Render(m ahtx0.Measurement) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	t := fraction(m.Temperature, MinTemperature, MaxTemperature)
	d.bar(t, mix(cold, hot, t))
	fmt.Fprintf(&d.buf, " %7.2f °C\n", m.Temperature)
	h := fraction(m.Humidity, 0, 100)
	d.bar(h, mix(dry, wet, h))
	fmt.Fprintf(&d.buf, " %7.2f %%RH\n", m.Humidity)
	_, err := d.buf.WriteTo(d.w)
	return err
}

func (d *Dev) bar(f float64, c color.NRGBA) {
	n := filled(f, d.width)
	_, _ = d.buf.WriteString("\r\033[0m")
	for i := 0; i < d.width; i++ {
		if i < n {
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		} else {
			_, _ = io.WriteString(&d.buf, d.palette.Block(empty))
		}
	}
	_, _ = d.buf.WriteString("\033[0m")
}

// fraction maps v from [lo, hi] to [0, 1].
func fraction(v, lo, hi float64) float64 {
	return math.Min(math.Max((v-lo)/(hi-lo), 0), 1)
}

func filled(f float64, width int) int {
	return int(math.Round(f * float64(width)))
}

func mix(a, b color.NRGBA, f float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.NRGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), 255}
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
