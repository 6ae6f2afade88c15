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

package tmds_test

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/test"
	"github.com/jetsetilly/tmdsgen/tmds"
)

// decode reverses a symbol produced by Encode()
func decode(s tmds.Symbol) uint8 {
	q := s & 0xff
	if s&tmds.InvertedMarker != 0 {
		q ^= 0xff
	}

	d := uint8(q & 0x01)
	for i := 1; i < 8; i++ {
		b := uint8((q>>i)^(q>>(i-1))) & 0x01
		if s&tmds.XORMarker == 0 {
			b ^= 0x01
		}
		d |= b << i
	}
	return d
}

func TestEncodeZero(t *testing.T) {
	// zero ones so the XOR chain is selected. the code word is all zeros
	// with the marker set and because the disparity is zero it is sent
	// without inversion
	s, d := tmds.Encode(0x00, 0)
	test.ExpectEquality(t, s, 0b0100000000)
	test.ExpectEquality(t, d, -8)
}

func TestEncodeKnownValues(t *testing.T) {
	// the XNOR chain of 0xab is 0x33. 5 ones and 3 zeros so from a disparity of
	// zero the code word is inverted, producing the video guard band symbol
	s, d := tmds.Encode(0xab, 0)
	test.ExpectEquality(t, s, tmds.GuardBand0)
	test.ExpectEquality(t, d, -2)

	// 0x55 has 4 ones with bit 0 set so the XOR chain is used. the result is
	// the data island guard band and disparity is unchanged because the value
	// is balanced
	s, d = tmds.Encode(0x55, 6)
	test.ExpectEquality(t, s, tmds.GuardBand1)
	test.ExpectEquality(t, d, 6)

	// 0xff from a negative disparity is not inverted. the XNOR marker is clear
	// so there is a correction of two
	s, d = tmds.Encode(0xff, -4)
	test.ExpectEquality(t, s&tmds.InvertedMarker, 0)
	test.ExpectEquality(t, s&tmds.XORMarker, 0)
	test.ExpectEquality(t, d, -4+8-2)

	// 0x01 from a negative disparity is inverted. the XOR marker is set so
	// there is a correction of two
	s, d = tmds.Encode(0x01, -3)
	test.ExpectEquality(t, s&tmds.InvertedMarker, tmds.InvertedMarker)
	test.ExpectEquality(t, s&tmds.XORMarker, tmds.XORMarker)
	test.ExpectEquality(t, d, -3+6+2)
}

func TestTransformSelection(t *testing.T) {
	for v := range 256 {
		s, _ := tmds.Encode(uint8(v), 0)
		ones := bits.OnesCount8(uint8(v))
		xnor := ones > 4 || (ones == 4 && v&0x01 == 0)
		test.ExpectEquality(t, s&tmds.XORMarker == 0, xnor, v)
	}
}

func TestEncodeIsReversible(t *testing.T) {
	for v := range 256 {
		for d := -tmds.MaxDisparity; d <= tmds.MaxDisparity; d++ {
			s, _ := tmds.Encode(uint8(v), d)
			test.ExpectEquality(t, s&^tmds.SymbolMask, 0, v, d)
			test.ExpectEquality(t, decode(s), uint8(v), v, d)
		}
	}
}

func TestReservedSymbols(t *testing.T) {
	for v := range 256 {
		for d := -tmds.MaxDisparity; d <= tmds.MaxDisparity; d++ {
			s, _ := tmds.Encode(uint8(v), d)
			test.ExpectFailure(t, tmds.IsReserved(s), v, d)
		}
	}

	for _, c := range tmds.ControlSymbols {
		test.ExpectSuccess(t, tmds.IsReserved(c))
	}
}

func TestDisparityBound(t *testing.T) {
	// from an even disparity the result is always within the bound
	for v := range 256 {
		for d := -tmds.MaxDisparity; d <= tmds.MaxDisparity; d += 2 {
			_, n := tmds.Encode(uint8(v), d)
			test.ExpectSuccess(t, n >= -tmds.MaxDisparity && n <= tmds.MaxDisparity, v, d, n)
			test.ExpectEquality(t, n&0x01, 0, v, d)
		}
	}

	// the exception to the bound that AvoidExtremes() exists for
	_, n := tmds.Encode(0x00, -1)
	test.ExpectEquality(t, n, 9)

	// with 0x00 removed every disparity in the LUT range stays in the range
	for v := 1; v < 256; v++ {
		for d := -8; d <= 7; d++ {
			_, n := tmds.Encode(uint8(v), d)
			test.ExpectSuccess(t, n >= -8 && n <= 7, v, d, n)
		}
	}
}

func TestRandomWalks(t *testing.T) {
	walks := 10000
	if testing.Short() {
		walks = 500
	}
	const steps = 1000

	var total int
	for w := range walks {
		d := 0
		for range steps {
			// every value is repeated three times, as it is in the LUT
			v := uint8(rand.IntN(256))
			for range 3 {
				_, d = tmds.Encode(v, d)
				if d < -tmds.MaxDisparity || d > tmds.MaxDisparity {
					t.Fatalf("walk %d: disparity out of bounds (%d)", w, d)
				}
			}
		}
		total += d
	}

	// the mean disparity at the end of every walk must also be in bounds
	mean := float64(total) / float64(walks)
	test.ExpectSuccess(t, mean >= -tmds.MaxDisparity && mean <= tmds.MaxDisparity)
}

func TestEncodeChecked(t *testing.T) {
	_, _, err := tmds.EncodeChecked(0x10, tmds.MaxDisparity+1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidState))

	_, _, err = tmds.EncodeChecked(0x10, -tmds.MaxDisparity-1)
	test.ExpectFailure(t, err)

	s, d, err := tmds.EncodeChecked(0x10, 2)
	test.ExpectSuccess(t, err)
	es, ed := tmds.Encode(0x10, 2)
	test.ExpectEquality(t, s, es)
	test.ExpectEquality(t, d, ed)
}

func TestDepthConvert(t *testing.T) {
	test.ExpectEquality(t, tmds.DepthConvert(0x00), 0x01)
	test.ExpectEquality(t, tmds.DepthConvert(0x1f), 0xfe)
	test.ExpectEquality(t, tmds.DepthConvert(0x10), 0x84)
	test.ExpectEquality(t, tmds.DepthConvert(0x01), 0x08)

	// upper bits of the argument are ignored
	test.ExpectEquality(t, tmds.DepthConvert(0x21), 0x08)

	for c := range 32 {
		v := tmds.DepthConvert(uint8(c))
		test.ExpectInequality(t, v, 0x00)
		test.ExpectInequality(t, v, 0xff)
	}
}

func TestSyncTables(t *testing.T) {
	test.ExpectEquality(t, tmds.ControlSymbol(true, true), tmds.ControlSymbols[3])
	test.ExpectEquality(t, tmds.ControlSymbol(false, true), tmds.ControlSymbols[1])
	test.ExpectEquality(t, tmds.ControlSymbol(true, false), tmds.ControlSymbols[2])
	test.ExpectEquality(t, tmds.ControlSymbol(false, false), tmds.ControlSymbols[0])

	test.ExpectEquality(t, tmds.GuardBandTERC4(true), tmds.TERC4[15])
	test.ExpectEquality(t, tmds.GuardBandTERC4(false), tmds.TERC4[13])
	test.ExpectEquality(t, tmds.SyncTERC4(true, false, false), tmds.TERC4[10])
	test.ExpectEquality(t, tmds.SyncTERC4(false, false, false), tmds.TERC4[8])
	test.ExpectEquality(t, tmds.SyncTERC4(true, false, true), tmds.TERC4[14])

	test.ExpectEquality(t, tmds.Symbol(0x2cc).String(), "1011001100")
}
