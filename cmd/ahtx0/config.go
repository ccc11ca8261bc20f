// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatGauge = "gauge"
)

type config struct {
	Bus      string
	Format   string
	Clamp    bool
	CRC      bool
	PNG      string
	Textfile string
}

func loadConfig() (config, error) {
	cfg := config{
		Bus:      viper.GetString("bus"),
		Format:   viper.GetString("format"),
		Clamp:    viper.GetBool("clamp"),
		CRC:      viper.GetBool("crc"),
		PNG:      viper.GetString("png"),
		Textfile: viper.GetString("textfile"),
	}
	switch cfg.Format {
	case formatText, formatJSON, formatYAML, formatGauge:
	case "":
		cfg.Format = formatText
	default:
		return cfg, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return cfg, nil
}
