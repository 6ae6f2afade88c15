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

// Package infoframe builds the AVI InfoFrame packet and encodes it for
// transmission in a data island.
//
// The packet header is sent one bit per symbol on channel 0, TERC4 encoded
// together with the sync lines. The body is sent one nibble per symbol on
// channels 1 and 2, low nibble on channel 1 and high nibble on channel 2. The
// first body symbol on each channel carries the packet checksum.
package infoframe

import (
	"fmt"

	"github.com/jetsetilly/tmdsgen/bitpack"
	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/logger"
	"github.com/jetsetilly/tmdsgen/tmds"
)

// Header values for the AVI InfoFrame.
const (
	TypeAVI    = 0x82
	VersionAVI = 0x02
	LengthAVI  = 0x0d
)

// MaxBody is the maximum number of body bytes in a packet, not counting the
// checksum.
const MaxBody = 27

// StreamLength is the number of symbols in each channel of a packet.
const StreamLength = 32

// the index into the body of the video identification code. this is data byte
// 4 in the CEA-861 numbering, where data byte 0 is the checksum
const vicIndex = 3

// Packet is an InfoFrame packet.
type Packet struct {
	Type    uint8
	Version uint8
	Length  uint8

	// the sum of the three header bytes. this is fixed for a given header and
	// is sent as the fourth header byte
	HeaderChecksum uint8

	// chosen so that the sum of the header, checksum and body is zero
	Checksum uint8

	Body [MaxBody]uint8
}

// NewAVI creates an AVI InfoFrame for the video identification code. All other
// fields of the body are zero.
func NewAVI(vic uint8) (*Packet, error) {
	if vic == 0 || vic > 0x7f {
		return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("infoframe: VIC %d is not a 7-bit code", vic))
	}

	p := &Packet{
		Type:    TypeAVI,
		Version: VersionAVI,
		Length:  LengthAVI,
	}
	p.Body[vicIndex] = vic
	p.Seal()

	logger.Logf(logger.Allow, "infoframe", "AVI for VIC %d: checksum %#02x", vic, p.Checksum)

	return p, nil
}

// Seal sets the header checksum and the packet checksum from the other fields.
// It should be called after changing any field of the packet.
func (p *Packet) Seal() {
	p.HeaderChecksum = p.Type + p.Version + p.Length
	p.Checksum = 0
	p.Checksum = -p.Sum()
}

// Sum returns the sum of the type, version, length, checksum and body bytes,
// modulo 256. For a valid packet the sum is zero.
func (p *Packet) Sum() uint8 {
	s := p.Type + p.Version + p.Length + p.Checksum
	for _, b := range p.Body {
		s += b
	}
	return s
}

// Validate checks the packet length and the two checksums.
func (p *Packet) Validate() error {
	if p.Length > MaxBody {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("infoframe: length %d is more than %d", p.Length, MaxBody))
	}
	for i := int(p.Length); i < MaxBody; i++ {
		if p.Body[i] != 0 {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("infoframe: body byte %d is beyond length %d", i, p.Length))
		}
	}
	if p.HeaderChecksum != p.Type+p.Version+p.Length {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("infoframe: header checksum %#02x is wrong", p.HeaderChecksum))
	}
	if s := p.Sum(); s != 0 {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("infoframe: packet sums to %#02x", s))
	}
	return nil
}

// Streams is the TERC4 encoding of a packet.
type Streams struct {
	// channel 0 for a data island where vsync is inactive (high)
	Header [StreamLength]tmds.Symbol

	// channel 0 for a data island during the vertical sync pulse
	HeaderVSync [StreamLength]tmds.Symbol

	Channel1 [StreamLength]tmds.Symbol
	Channel2 [StreamLength]tmds.Symbol
}

// ForVSync returns the channel 0 stream for the level of vsync. A value of
// true means the vsync line is high (inactive).
func (s *Streams) ForVSync(vsync bool) [StreamLength]tmds.Symbol {
	if vsync {
		return s.Header
	}
	return s.HeaderVSync
}

// Streams encodes the packet. Header bytes are sent least significant bit
// first with hsync low.
func (p *Packet) Streams() Streams {
	var s Streams

	header := [...]uint8{p.Type, p.Version, p.Length, p.HeaderChecksum}
	for i, b := range header {
		for j := range 8 {
			bit := b>>j&0x01 == 0x01
			s.Header[i*8+j] = tmds.SyncTERC4(true, false, bit)
			s.HeaderVSync[i*8+j] = tmds.SyncTERC4(false, false, bit)
		}
	}

	s.Channel1[0] = tmds.TERC4[p.Checksum&0x0f]
	s.Channel2[0] = tmds.TERC4[p.Checksum>>4]
	for i := 1; i < StreamLength; i++ {
		var b uint8
		if i-1 < MaxBody {
			b = p.Body[i-1]
		}
		s.Channel1[i] = tmds.TERC4[b&0x0f]
		s.Channel2[i] = tmds.TERC4[b>>4]
	}

	return s
}

// Packed is the result of packing each of the streams with the bitpack
// package.
type Packed struct {
	Header      []uint32
	HeaderVSync []uint32
	Channel1    []uint32
	Channel2    []uint32
}

// Pack validates, encodes and packs the packet.
func (p *Packet) Pack() (*Packed, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := p.Streams()

	var pk Packed
	var err error

	for _, c := range []struct {
		dest *[]uint32
		src  [StreamLength]tmds.Symbol
	}{
		{dest: &pk.Header, src: s.Header},
		{dest: &pk.HeaderVSync, src: s.HeaderVSync},
		{dest: &pk.Channel1, src: s.Channel1},
		{dest: &pk.Channel2, src: s.Channel2},
	} {
		*c.dest, err = bitpack.Pack(c.src[:])
		if err != nil {
			return nil, curated.Errorf("infoframe: %v", err)
		}
	}

	return &pk, nil
}
