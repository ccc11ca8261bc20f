// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var (
	cfgFile string
	logger  = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "ahtx0",
	Short: "Read temperature and relative humidity from an AHTx0 sensor",
	Long: `Resets the AHT10/AHT20/AHT21 sensor at address 0x38, waits for its
calibration, takes one measurement and prints it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRead,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ahtx0/config.yaml)")
	flags.String("bus", "", "I²C bus name or number (default is the first bus found)")
	flags.StringP("format", "f", formatText, "output format: text, json, yaml or gauge")
	flags.Bool("clamp", false, "clamp humidity to [0, 100] %RH")
	flags.Bool("crc", false, "read and check the CRC byte (AHT20/AHT21 only)")
	flags.String("png", "", "also render the reading to this PNG file")
	flags.String("textfile", "", "also write Prometheus metrics to this file")
	flags.BoolP("verbose", "v", false, "log debug messages")
	for _, name := range []string{"bus", "format", "clamp", "crc", "png", "textfile", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("/etc/ahtx0")
		viper.AddConfigPath("$HOME/.ahtx0")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("ahtx0")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	readErr := viper.ReadInConfig()

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if readErr == nil {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "Using config file", slog.String("config", viper.ConfigFileUsed()))
	} else if cfgFile != "" {
		logger.LogAttrs(context.Background(), slog.LevelWarn, "Could not read config file", slog.String("config", cfgFile), slog.Any("err", readErr))
	}
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initializing host drivers: %w", err)
	}
	b, err := i2creg.Open(cfg.Bus)
	if err != nil {
		return fmt.Errorf("opening I²C bus %q: %w", cfg.Bus, err)
	}
	defer b.Close()
	logger.LogAttrs(ctx, slog.LevelDebug, "Reading sensor", slog.String("bus", b.String()), slog.String("addr", fmt.Sprintf("%#x", ahtx0.DeviceAddress)))

	start := time.Now()
	m, readErr := ahtx0.Read(b, &ahtx0.Opts{ValidateData: cfg.CRC})
	logger.LogAttrs(ctx, slog.LevelDebug, "Acquisition done", slog.Duration("took", time.Since(start)))
	return report(ctx, cmd.OutOrStdout(), cfg, m, readErr, start)
}
