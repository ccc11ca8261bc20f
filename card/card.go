// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package card draws an AHTx0 measurement into an image, sized by default
// for a 2.13" e-paper panel. The result can be sent to any display.Drawer or
// saved as a PNG.
package card

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Opts holds the layout of the card.
type Opts struct {
	W, H       int
	FontSize   float64
	Background color.Color
	Foreground color.Color
}

// DefaultOpts fits a 250x122 black and white panel.
var DefaultOpts = Opts{
	W:          250,
	H:          122,
	FontSize:   28,
	Background: color.White,
	Foreground: color.Black,
}

var regular = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// Render returns the card for m. The Opts can be nil.
func Render(m ahtx0.Measurement, opts *Opts) (image.Image, error) {
	dc, err := draw(m, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG encodes the card for m as a PNG into w.
func WritePNG(w io.Writer, m ahtx0.Measurement, opts *Opts) error {
	dc, err := draw(m, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func draw(m ahtx0.Measurement, opts *Opts) (*gg.Context, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("card: invalid size %dx%d", opts.W, opts.H)
	}
	f, err := regular()
	if err != nil {
		return nil, fmt.Errorf("card: parsing font: %w", err)
	}
	bg, fg := opts.Background, opts.Foreground
	if bg == nil {
		bg = DefaultOpts.Background
	}
	if fg == nil {
		fg = DefaultOpts.Foreground
	}
	size := opts.FontSize
	if size <= 0 {
		size = DefaultOpts.FontSize
	}

	w, h := float64(opts.W), float64(opts.H)
	dc := gg.NewContext(opts.W, opts.H)
	dc.SetColor(bg)
	dc.Clear()
	dc.SetColor(fg)
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
	dc.DrawStringAnchored(fmt.Sprintf("%.1f °C", m.Temperature), w/2, h*0.3, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f %%RH", m.Humidity), w/2, h*0.65, 0.5, 0.5)

	// Humidity bar along the bottom edge.
	padding := 8.0
	barH := math.Max(h/16, 4)
	barW := w - 2*padding
	fill := math.Min(math.Max(m.Humidity/100, 0), 1) * barW
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(padding, h-padding-barH, barW, barH, barH/2)
	dc.Stroke()
	if fill > 0 {
		dc.DrawRoundedRectangle(padding, h-padding-barH, fill, barH, barH/2)
		dc.Fill()
	}
	return dc, nil
}
