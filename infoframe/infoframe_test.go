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

package infoframe_test

import (
	"testing"

	"github.com/jetsetilly/tmdsgen/bitpack"
	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/infoframe"
	"github.com/jetsetilly/tmdsgen/test"
	"github.com/jetsetilly/tmdsgen/tmds"
)

func TestAVI(t *testing.T) {
	p, err := infoframe.NewAVI(2)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Type, uint8(0x82))
	test.ExpectEquality(t, p.Version, uint8(0x02))
	test.ExpectEquality(t, p.Length, uint8(0x0d))
	test.ExpectEquality(t, p.HeaderChecksum, uint8(0x91))
	test.ExpectEquality(t, p.Checksum, uint8(0x6d))
	test.ExpectEquality(t, p.Body[3], uint8(2))
	test.ExpectEquality(t, p.Sum(), uint8(0))
	test.ExpectSuccess(t, p.Validate())

	for i, b := range p.Body {
		if i != 3 {
			test.ExpectEquality(t, b, uint8(0), i)
		}
	}
}

func TestChecksumForEveryVIC(t *testing.T) {
	for vic := 1; vic <= 0x7f; vic++ {
		p, err := infoframe.NewAVI(uint8(vic))
		test.DemandSuccess(t, err, vic)

		s := int(p.Type) + int(p.Version) + int(p.Length) + int(p.Checksum)
		for _, b := range p.Body {
			s += int(b)
		}
		test.ExpectEquality(t, s%256, 0, vic)
	}
}

func TestInvalidVIC(t *testing.T) {
	_, err := infoframe.NewAVI(0)
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidInput))

	_, err = infoframe.NewAVI(0x80)
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidInput))
}

func TestValidate(t *testing.T) {
	p, err := infoframe.NewAVI(1)
	test.DemandSuccess(t, err)

	// changing the body without resealing breaks the checksum
	q := *p
	q.Body[4] = 0x10
	test.ExpectSuccess(t, curated.Is(q.Validate(), curated.InvalidInput))
	q.Seal()
	test.ExpectSuccess(t, q.Validate())

	// body byte beyond the length
	q = *p
	q.Body[20] = 0x01
	q.Seal()
	test.ExpectSuccess(t, curated.Is(q.Validate(), curated.InvalidInput))

	// length too long
	q = *p
	q.Length = 28
	q.Seal()
	test.ExpectSuccess(t, curated.Is(q.Validate(), curated.InvalidInput))

	// header checksum
	q = *p
	q.HeaderChecksum++
	test.ExpectSuccess(t, curated.Is(q.Validate(), curated.InvalidInput))

	_, err = q.Pack()
	test.ExpectSuccess(t, curated.Is(err, curated.InvalidInput))
}

// the inverse of the TERC4 table
func terc4Value(t *testing.T, s tmds.Symbol) uint8 {
	t.Helper()
	for i, v := range tmds.TERC4 {
		if v == s {
			return uint8(i)
		}
	}
	t.Fatalf("%s is not a TERC4 symbol", s)
	return 0
}

func TestStreams(t *testing.T) {
	p, err := infoframe.NewAVI(2)
	test.DemandSuccess(t, err)

	s := p.Streams()

	// header bits, least significant bit first
	header := []uint8{0x82, 0x02, 0x0d, 0x91}
	for i := range infoframe.StreamLength {
		bit := header[i/8]>>(i%8)&0x01 == 0x01

		v := terc4Value(t, s.Header[i])
		test.ExpectEquality(t, v&tmds.TERC4Header == tmds.TERC4Header, bit, i)
		test.ExpectEquality(t, v&tmds.TERC4Continuation, uint8(tmds.TERC4Continuation), i)
		test.ExpectEquality(t, v&tmds.TERC4HSync, uint8(0), i)
		test.ExpectEquality(t, v&tmds.TERC4VSync, uint8(tmds.TERC4VSync), i)

		w := terc4Value(t, s.HeaderVSync[i])
		test.ExpectEquality(t, w, v&^tmds.TERC4VSync, i)
	}

	// first header bit of 0x82 is clear and the second is set
	test.ExpectEquality(t, s.Header[0], tmds.TERC4[0b1010])
	test.ExpectEquality(t, s.Header[1], tmds.TERC4[0b1110])
	test.ExpectEquality(t, s.HeaderVSync[0], tmds.TERC4[0b1000])

	// checksum nibbles
	test.ExpectEquality(t, s.Channel1[0], tmds.TERC4[0x0d])
	test.ExpectEquality(t, s.Channel2[0], tmds.TERC4[0x06])

	// body is offset by one symbol
	for i := 1; i < infoframe.StreamLength; i++ {
		var b uint8
		if i-1 < infoframe.MaxBody {
			b = p.Body[i-1]
		}
		test.ExpectEquality(t, terc4Value(t, s.Channel1[i]), b&0x0f, i)
		test.ExpectEquality(t, terc4Value(t, s.Channel2[i]), b>>4, i)
	}
	test.ExpectEquality(t, s.Channel1[4], tmds.TERC4[2])
	test.ExpectEquality(t, s.Channel2[4], tmds.TERC4[0])

	hdr := s.ForVSync(true)
	test.ExpectEquality(t, hdr, s.Header)
	hdr = s.ForVSync(false)
	test.ExpectEquality(t, hdr, s.HeaderVSync)
}

func TestPack(t *testing.T) {
	p, err := infoframe.NewAVI(2)
	test.DemandSuccess(t, err)

	pk, err := p.Pack()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, len(pk.Header), 10)
	test.ExpectEquality(t, len(pk.HeaderVSync), 10)
	test.ExpectEquality(t, len(pk.Channel1), 10)
	test.ExpectEquality(t, len(pk.Channel2), 10)

	s := p.Streams()
	u, err := bitpack.Unpack(pk.Channel1, infoframe.StreamLength)
	test.DemandSuccess(t, err)
	for i := range u {
		test.ExpectEquality(t, u[i], s.Channel1[i], i)
	}
}
