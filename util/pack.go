// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// record field packing
//
// variable length fields are preceded by their Varint64 byte count;
// integers are stored as plain Varint64

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// AppendBytes - append a length prefixed byte slice
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendUint64 - append a Varint64 value
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// UnpackBytes - read a length prefixed byte slice
//
// returns the data and the total bytes consumed; nil, 0 on truncation
func UnpackBytes(buffer []byte) ([]byte, int) {
	length, lengthSize := FromVarint64(buffer)
	if 0 == lengthSize {
		return nil, 0
	}
	end := lengthSize + int(length)
	if end > len(buffer) || end < lengthSize {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[lengthSize:end])
	return data, end
}

// UnpackString - read a length prefixed string
func UnpackString(buffer []byte) (string, int) {
	data, consumed := UnpackBytes(buffer)
	if 0 == consumed {
		return "", 0
	}
	return string(data), consumed
}

// UnpackUint64 - read a Varint64 value
//
// returns the value and the bytes consumed; 0, 0 on truncation
func UnpackUint64(buffer []byte) (uint64, int) {
	return FromVarint64(buffer)
}
