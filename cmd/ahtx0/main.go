// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ahtx0 reads temperature and relative humidity once from an AHTx0 sensor.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.LogAttrs(context.Background(), slog.LevelError, "Failed to read sensor",
			slog.String("kind", ahtx0.Kind(err).String()),
			slog.Int("status_code", int(statusCode(err))),
			slog.Any("err", err))
		os.Exit(1)
	}
}
