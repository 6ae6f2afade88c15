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

package tmds

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/tmdsgen/curated"
)

// MaxDisparity is the bound of the running disparity. Starting from zero the
// running disparity is always even and Encode() keeps it within the range
// -MaxDisparity to +MaxDisparity.
//
// From an odd disparity the bound also holds with the single exception of the
// value 0x00 at a disparity of -1, which leads to +9. See AvoidExtremes().
const MaxDisparity = 8

// Encode an 8-bit value as a TMDS symbol. The disparity argument is the
// running disparity of the channel before the symbol and the returned
// disparity is the running disparity after the symbol.
//
// The caller owns the running disparity and must thread it through
// consecutive calls for the same channel.
//
// The disparity is counted from the number of ones and zeros in the input
// value, not in the code word.
func Encode(value uint8, disparity int) (Symbol, int) {
	ones := bits.OnesCount8(value)
	zeros := 8 - ones

	var code Symbol
	if ones > 4 || (ones == 4 && value&0x01 == 0) {
		code = xnorChain(value)
	} else {
		code = xorChain(value)
	}

	if ones == zeros || disparity == 0 {
		if code&XORMarker != 0 {
			return code, disparity + (ones - zeros)
		}
		return (code ^ 0xff) | InvertedMarker, disparity + (zeros - ones)
	}

	if (disparity > 0 && ones > zeros) || (disparity < 0 && zeros > ones) {
		disparity += zeros - ones
		if code&XORMarker != 0 {
			disparity += 2
		}
		return (code ^ 0xff) | InvertedMarker, disparity
	}

	disparity += ones - zeros
	if code&XORMarker == 0 {
		disparity -= 2
	}
	return code, disparity
}

// EncodeChecked is the same as Encode() except that the disparity argument is
// checked against MaxDisparity. An InvalidState error is returned if the
// disparity could not have been produced by Encode().
func EncodeChecked(value uint8, disparity int) (Symbol, int, error) {
	if disparity > MaxDisparity || disparity < -MaxDisparity {
		return 0, disparity, curated.Errorf(curated.InvalidState, fmt.Sprintf("tmds: disparity %d out of range", disparity))
	}
	s, d := Encode(value, disparity)
	return s, d, nil
}

// xorChain creates the 9-bit code word. Bit 0 is bit 0 of the value and each
// subsequent bit is the XOR of the previous code bit and the next value bit.
// Bit 8 is set.
func xorChain(value uint8) Symbol {
	q := Symbol(value & 0x01)
	for i := 1; i < 8; i++ {
		b := (Symbol(value>>i) ^ (q >> (i - 1))) & 0x01
		q |= b << i
	}
	return q | XORMarker
}

// xnorChain is the same as xorChain except that each step is an XNOR. Bit 8 is
// clear.
func xnorChain(value uint8) Symbol {
	q := Symbol(value & 0x01)
	for i := 1; i < 8; i++ {
		b := ^(Symbol(value>>i) ^ (q >> (i - 1))) & 0x01
		q |= b << i
	}
	return q
}
