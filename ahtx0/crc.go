// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ahtx0

// crc8 computes the checksum the AHT20 appends to a measurement frame:
// p(x) = x^8 + x^5 + x^4 + 1, initial value 0xFF, no final xor.
func crc8(data []byte) byte {
	var crc byte = 0xff
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 == 0 {
				crc <<= 1
			} else {
				crc = crc<<1 ^ 0x31
			}
		}
	}
	return crc
}
