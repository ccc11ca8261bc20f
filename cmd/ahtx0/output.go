// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/GermanBionicSystems/ahtx0/card"
	"github.com/GermanBionicSystems/ahtx0/gauge"
	"github.com/GermanBionicSystems/ahtx0/metrics"
	"gopkg.in/yaml.v3"
)

// report writes the outcome of one acquisition to w and to the optional side
// outputs. It returns readErr, joined with any output error.
//
// json and yaml always print a Record so failures stay machine readable;
// text and gauge print nothing on failure.
func report(ctx context.Context, w io.Writer, cfg config, m ahtx0.Measurement, readErr error, when time.Time) error {
	if readErr == nil && cfg.Clamp {
		m = ahtx0.Clamp(m)
	}
	var errs []error
	if readErr != nil {
		errs = append(errs, readErr)
	}
	if err := writeReading(w, cfg.Format, m, readErr); err != nil {
		errs = append(errs, fmt.Errorf("writing %s output: %w", cfg.Format, err))
	}
	if cfg.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Textfile, metrics.Reading{Measurement: m, Err: readErr, Time: when}); err != nil {
			errs = append(errs, fmt.Errorf("writing metrics: %w", err))
		} else {
			logger.LogAttrs(ctx, slog.LevelDebug, "Wrote metrics", slog.String("path", cfg.Textfile))
		}
	}
	if cfg.PNG != "" && readErr == nil {
		if err := savePNG(cfg.PNG, m); err != nil {
			errs = append(errs, fmt.Errorf("writing card: %w", err))
		} else {
			logger.LogAttrs(ctx, slog.LevelDebug, "Wrote card", slog.String("path", cfg.PNG))
		}
	}
	return errors.Join(errs...)
}

func writeReading(w io.Writer, format string, m ahtx0.Measurement, readErr error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newRecord(m, readErr))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(newRecord(m, readErr)); err != nil {
			return err
		}
		return enc.Close()
	}
	if readErr != nil {
		return nil
	}
	if format == formatGauge {
		opts := gauge.Opts{}
		if w != os.Stdout {
			opts.W = w
		}
		g := gauge.New(&opts)
		return errors.Join(g.Render(m), g.Halt())
	}
	_, err := fmt.Fprintf(w, "Temperature: %.2f °C\nHumidity:    %.2f %%RH\n", m.Temperature, m.Humidity)
	return err
}

func savePNG(path string, m ahtx0.Measurement) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return card.WritePNG(f, m, nil)
}
