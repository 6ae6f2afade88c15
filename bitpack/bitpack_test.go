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

package bitpack_test

import (
	"math/rand/v2"
	"testing"

	"github.com/jetsetilly/tmdsgen/bitpack"
	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/test"
	"github.com/jetsetilly/tmdsgen/tmds"
)

func TestSequence(t *testing.T) {
	s := make([]tmds.Symbol, 16)
	for i := range s {
		s[i] = tmds.Symbol(i + 1)
	}

	w, err := bitpack.Pack(s)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(w), 5)
	test.ExpectEquality(t, w[0], 0x00300801)

	u, err := bitpack.Unpack(w, len(s))
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(u), len(s))
	for i := range s {
		test.ExpectEquality(t, u[i], s[i], i)
	}
}

func TestRoundTrip(t *testing.T) {
	for range 1000 {
		n := rand.IntN(20) * bitpack.GroupSymbols
		s := make([]tmds.Symbol, n)
		for i := range s {
			s[i] = tmds.Symbol(rand.IntN(1024))
		}

		w, err := bitpack.Pack(s)
		test.DemandSuccess(t, err)
		test.DemandEquality(t, len(w), bitpack.Words(n))

		u, err := bitpack.Unpack(w, n)
		test.DemandSuccess(t, err)
		test.DemandEquality(t, len(u), n)
		for i := range s {
			test.ExpectEquality(t, u[i], s[i], i)
		}
	}
}

func TestAllBitsSet(t *testing.T) {
	s := make([]tmds.Symbol, 16)
	for i := range s {
		s[i] = tmds.SymbolMask
	}
	w, err := bitpack.Pack(s)
	test.ExpectSuccess(t, err)
	for i := range w {
		test.ExpectEquality(t, w[i], 0xffffffff, i)
	}

	// bits above the tenth are not packed
	for i := range s {
		s[i] = 0xfc00
	}
	w, err = bitpack.Pack(s)
	test.ExpectSuccess(t, err)
	for i := range w {
		test.ExpectEquality(t, w[i], 0, i)
	}
}

func TestInvalidLength(t *testing.T) {
	w, err := bitpack.Pack(make([]tmds.Symbol, 15))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidInput))
	test.ExpectEquality(t, len(w), 0)

	_, err = bitpack.Unpack(make([]uint32, 4), 0)
	test.ExpectFailure(t, err)
	_, err = bitpack.Unpack(make([]uint32, 5), 17)
	test.ExpectFailure(t, err)
	_, err = bitpack.Unpack(make([]uint32, 5), -1)
	test.ExpectFailure(t, err)

	// fewer symbols than the words contain is fine
	u, err := bitpack.Unpack(make([]uint32, 5), 3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(u), 3)
}

func TestPadded(t *testing.T) {
	s := []tmds.Symbol{0x101, 0x202, 0x303}
	w := bitpack.PackPadded(s, tmds.ControlSymbols[3])
	test.DemandEquality(t, len(w), 5)

	u, err := bitpack.Unpack(w, 16)
	test.DemandSuccess(t, err)
	for i := range s {
		test.ExpectEquality(t, u[i], s[i])
	}
	for i := len(s); i < 16; i++ {
		test.ExpectEquality(t, u[i], tmds.ControlSymbols[3])
	}

	// original slice is untouched
	test.ExpectEquality(t, len(s), 3)
}

func TestWords(t *testing.T) {
	test.ExpectEquality(t, bitpack.Words(0), 0)
	test.ExpectEquality(t, bitpack.Words(1), 5)
	test.ExpectEquality(t, bitpack.Words(16), 5)
	test.ExpectEquality(t, bitpack.Words(192), 60)
	test.ExpectEquality(t, bitpack.Words(720), 225)
}
