// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Prism Papers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/prismpapers/prismd/util"
)

func TestVarint64(t *testing.T) {

	items := []struct {
		value   uint64
		encoded []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{500000, []byte{0xa0, 0xc2, 0x1e}},
		{1000000000, []byte{0x80, 0x94, 0xeb, 0xdc, 0x03}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for i, item := range items {
		encoded := util.ToVarint64(item.value)
		if !bytes.Equal(encoded, item.encoded) {
			t.Errorf("%d: encode: %d → %x  expected: %x", i, item.value, encoded, item.encoded)
		}
		decoded, count := util.FromVarint64(item.encoded)
		if decoded != item.value || count != len(item.encoded) {
			t.Errorf("%d: decode: %x → %d (%d bytes)  expected: %d (%d bytes)",
				i, item.encoded, decoded, count, item.value, len(item.encoded))
		}
	}

	// truncated buffer must decode as not found
	if v, n := util.FromVarint64([]byte{0x80}); 0 != v || 0 != n {
		t.Errorf("truncated decode: %d, %d  expected: 0, 0", v, n)
	}
}

func TestBase58RoundTrip(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0xfd, 0xfe, 0xff}
	s := util.ToBase58(data)
	if !bytes.Equal(util.FromBase58(s), data) {
		t.Errorf("round trip failed for: %q", s)
	}
	if 0 != len(util.FromBase58("0OIl")) {
		t.Error("invalid characters must decode to empty")
	}
}
