// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GermanBionicSystems/ahtx0/ahtx0"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var when = time.Unix(1700000000, 0)

func TestRegistry(t *testing.T) {
	reg := Registry(Reading{
		Measurement: ahtx0.Measurement{Temperature: 21.25, Humidity: 40.5},
		Time:        when,
	})
	expected := `
# HELP ahtx0_humidity_percent Relative humidity in percent.
# TYPE ahtx0_humidity_percent gauge
ahtx0_humidity_percent 40.5
# HELP ahtx0_last_read_timestamp_seconds Unix time of the last acquisition.
# TYPE ahtx0_last_read_timestamp_seconds gauge
ahtx0_last_read_timestamp_seconds 1.7e+09
# HELP ahtx0_temperature_celsius Temperature in degrees Celsius.
# TYPE ahtx0_temperature_celsius gauge
ahtx0_temperature_celsius 21.25
# HELP ahtx0_up Whether the last acquisition succeeded.
# TYPE ahtx0_up gauge
ahtx0_up 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestRegistry_failure(t *testing.T) {
	reg := Registry(Reading{
		Measurement: ahtx0.Measurement{Temperature: 21.25, Humidity: 40.5},
		Err:         fmt.Errorf("reading: %w", &ahtx0.BusyError{Attempts: 10}),
		Time:        when,
	})
	expected := `
# HELP ahtx0_read_error Class of the error that failed the last acquisition.
# TYPE ahtx0_read_error gauge
ahtx0_read_error{kind="busy"} 1
# HELP ahtx0_up Whether the last acquisition succeeded.
# TYPE ahtx0_up gauge
ahtx0_up 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ahtx0_read_error", "ahtx0_up"))
	n, err := testutil.GatherAndCount(reg, "ahtx0_temperature_celsius", "ahtx0_humidity_percent")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ahtx0.prom")
	require.NoError(t, WriteTextfile(path, Reading{
		Measurement: ahtx0.Measurement{Temperature: -3.5, Humidity: 88},
		Time:        when,
	}))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ahtx0_temperature_celsius -3.5\n")
	assert.Contains(t, string(b), "ahtx0_humidity_percent 88\n")
	assert.Contains(t, string(b), "ahtx0_up 1\n")
}
