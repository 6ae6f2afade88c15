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

// Package lut builds the pixel lookup table used at runtime to encode video
// data without running the TMDS encoder. Every pixel is repeated three times
// on the line so an entry holds three symbols plus the running disparity
// after the third.
//
// The table is addressed by the source colour and the running disparity
// before the pixel. The disparity is stored in the table as a bucket, which
// is the disparity offset by MinDisparity.
package lut

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/logger"
	"github.com/jetsetilly/tmdsgen/tmds"
)

// Repeats is the number of times each pixel is sent.
const Repeats = 3

// The range of the running disparity that can be stored in a bucket.
const (
	MinDisparity = -8
	MaxDisparity = 7
	Buckets      = MaxDisparity - MinDisparity + 1
)

// the bit position of the disparity bucket in the second word of an entry.
// the runtime masks the word and ORs it with the next colour to form the
// address of the next entry
const disparityShift = 6

// Entry is a single entry in the LUT.
type Entry struct {
	Symbols   [Repeats]tmds.Symbol
	Disparity int
}

// Options for BuildWith().
type Options struct {
	// the number of bits in the source colour. either 5 or 8
	Depth int
}

// Table is the result of Build(). It should not be modified once built.
type Table struct {
	depth   int
	entries []Entry
}

// Build the table for 5-bit colour.
func Build() *Table {
	// 5-bit colour is always valid
	t, _ := BuildWith(Options{Depth: 5})
	return t
}

// BuildWith builds a table according to the options. Colours are built in
// parallel.
func BuildWith(opts Options) (*Table, error) {
	var convert func(uint8) uint8
	switch opts.Depth {
	case 5:
		convert = tmds.DepthConvert
	case 8:
		convert = tmds.AvoidExtremes
	default:
		return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("lut: unsupported colour depth (%d)", opts.Depth))
	}

	colours := 1 << opts.Depth

	t := &Table{
		depth:   opts.Depth,
		entries: make([]Entry, colours*Buckets),
	}

	var wg sync.WaitGroup
	for c := range colours {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := convert(uint8(c))
			for b := range Buckets {
				t.entries[t.offset(c, b)] = repeat(v, b+MinDisparity)
			}
		}()
	}
	wg.Wait()

	// the final disparity of every entry must be addressable
	for i, e := range t.entries {
		if e.Disparity < MinDisparity || e.Disparity > MaxDisparity {
			return nil, curated.Errorf(curated.InvalidState, fmt.Sprintf("lut: entry %d has disparity %d", i, e.Disparity))
		}
	}

	logger.Logf(logger.Allow, "lut", "built %d entries for %d-bit colour", len(t.entries), t.depth)

	return t, nil
}

func repeat(v uint8, disparity int) Entry {
	var e Entry
	for i := range e.Symbols {
		e.Symbols[i], disparity = tmds.Encode(v, disparity)
	}
	e.Disparity = disparity
	return e
}

// Depth returns the colour depth the table was built for.
func (t *Table) Depth() int {
	return t.depth
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Index returns the word address of an entry in the binary layout of the
// table. For 5-bit colour this is:
//
//	(colour << 1) | (bucket << 6)
func (t *Table) Index(colour int, bucket int) int {
	return t.offset(colour, bucket) << 1
}

func (t *Table) offset(colour int, bucket int) int {
	return colour | bucket<<t.depth
}

// Lookup returns the entry for the colour and the running disparity before
// the pixel.
func (t *Table) Lookup(colour int, disparity int) (Entry, error) {
	if colour < 0 || colour >= 1<<t.depth {
		return Entry{}, curated.Errorf(curated.InvalidInput, fmt.Sprintf("lut: colour %#x is not %d-bit", colour, t.depth))
	}
	if disparity < MinDisparity || disparity > MaxDisparity {
		return Entry{}, curated.Errorf(curated.InvalidInput, fmt.Sprintf("lut: disparity %d has no bucket", disparity))
	}
	return t.entries[t.offset(colour, disparity-MinDisparity)], nil
}

// Encode a line of colours the way the runtime does, by repeatedly looking up
// the next entry with the disparity of the previous one. Returns the symbols
// and the disparity at the end of the line.
func (t *Table) Encode(colours []uint8, disparity int) ([]tmds.Symbol, int, error) {
	symbols := make([]tmds.Symbol, 0, len(colours)*Repeats)
	for _, c := range colours {
		e, err := t.Lookup(int(c), disparity)
		if err != nil {
			return nil, disparity, err
		}
		symbols = append(symbols, e.Symbols[:]...)
		disparity = e.Disparity
	}
	return symbols, disparity, nil
}

// Words returns the binary layout of the table. Two words per entry; the first
// has the three symbols packed into bits 0-29 and the second has the bucket of
// the final disparity.
func (t *Table) Words() []uint32 {
	w := make([]uint32, len(t.entries)*2)
	for i, e := range t.entries {
		w[i*2] = uint32(e.Symbols[0]&tmds.SymbolMask) |
			uint32(e.Symbols[1]&tmds.SymbolMask)<<10 |
			uint32(e.Symbols[2]&tmds.SymbolMask)<<20
		w[i*2+1] = uint32(e.Disparity-MinDisparity) << disparityShift
	}
	return w
}

// Bytes returns the result of Words() as little-endian bytes.
func (t *Table) Bytes() []byte {
	w := t.Words()
	b := make([]byte, 0, len(w)*4)
	for _, v := range w {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}
