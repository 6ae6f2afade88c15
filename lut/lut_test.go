// This file is part of tmdsgen.
//
// tmdsgen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tmdsgen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tmdsgen.  If not, see <https://www.gnu.org/licenses/>.

package lut_test

import (
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/lut"
	"github.com/jetsetilly/tmdsgen/test"
	"github.com/jetsetilly/tmdsgen/tmds"
)

func TestBuild(t *testing.T) {
	tab := lut.Build()
	test.ExpectEquality(t, tab.Depth(), 5)
	test.ExpectEquality(t, tab.Len(), 32*16)

	// every entry is the result of encoding the converted colour three times
	for c := range 32 {
		for d := lut.MinDisparity; d <= lut.MaxDisparity; d++ {
			e, err := tab.Lookup(c, d)
			test.DemandSuccess(t, err)

			disparity := d
			for i := range lut.Repeats {
				var s tmds.Symbol
				s, disparity = tmds.Encode(tmds.DepthConvert(uint8(c)), disparity)
				test.ExpectEquality(t, e.Symbols[i], s, c, d, i)
			}
			test.ExpectEquality(t, e.Disparity, disparity, c, d)
			test.ExpectSuccess(t, e.Disparity >= lut.MinDisparity && e.Disparity <= lut.MaxDisparity)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := lut.Build().Words()
	b := lut.Build().Words()
	test.DemandEquality(t, len(a), len(b))
	for i := range a {
		test.ExpectEquality(t, a[i], b[i], i)
	}
}

func TestWords(t *testing.T) {
	tab := lut.Build()
	w := tab.Words()
	test.DemandEquality(t, len(w), 1024)

	for c := range 32 {
		for b := range lut.Buckets {
			idx := tab.Index(c, b)
			test.ExpectEquality(t, idx, (c<<1)|(b<<6))

			e, err := tab.Lookup(c, b+lut.MinDisparity)
			test.DemandSuccess(t, err)

			test.ExpectEquality(t, w[idx]&0x3ff, uint32(e.Symbols[0]))
			test.ExpectEquality(t, w[idx]>>10&0x3ff, uint32(e.Symbols[1]))
			test.ExpectEquality(t, w[idx]>>20&0x3ff, uint32(e.Symbols[2]))
			test.ExpectEquality(t, w[idx]>>30, 0)
			test.ExpectEquality(t, w[idx+1], uint32(e.Disparity+8)<<6)

			// the disparity word is the bucket part of the next address
			test.ExpectEquality(t, int(w[idx+1])|c<<1, tab.Index(c, e.Disparity+8))
		}
	}

	bs := tab.Bytes()
	test.DemandEquality(t, len(bs), 4096)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(bs[4:]), w[1])
}

func TestEncodeLine(t *testing.T) {
	tab := lut.Build()

	colours := make([]uint8, 720)
	for i := range colours {
		colours[i] = uint8(i % 32)
	}

	s, d, err := tab.Encode(colours, 0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(s), len(colours)*lut.Repeats)

	// the same line encoded directly
	disparity := 0
	for i, c := range colours {
		for r := range lut.Repeats {
			var e tmds.Symbol
			e, disparity = tmds.Encode(tmds.DepthConvert(c), disparity)
			test.ExpectEquality(t, s[i*lut.Repeats+r], e, i, r)
		}
	}
	test.ExpectEquality(t, d, disparity)

	_, _, err = tab.Encode([]uint8{0x20}, 0)
	test.ExpectFailure(t, err)
}

func TestLookupErrors(t *testing.T) {
	tab := lut.Build()

	_, err := tab.Lookup(32, 0)
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidInput))
	_, err = tab.Lookup(-1, 0)
	test.ExpectFailure(t, err)
	_, err = tab.Lookup(0, 8)
	test.ExpectFailure(t, err)
	_, err = tab.Lookup(0, -9)
	test.ExpectFailure(t, err)
}

func TestBuildWith(t *testing.T) {
	tab, err := lut.BuildWith(lut.Options{Depth: 8})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Len(), 256*16)
	test.ExpectEquality(t, len(tab.Words()), 256*16*2)
	test.ExpectEquality(t, tab.Index(0xff, 15), (0xff|15<<8)<<1)

	e, err := tab.Lookup(0x80, -2)
	test.DemandSuccess(t, err)
	s, _ := tmds.Encode(0x80, -2)
	test.ExpectEquality(t, e.Symbols[0], s)

	_, err = lut.BuildWith(lut.Options{Depth: 6})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidInput))
}
