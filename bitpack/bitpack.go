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

// Package bitpack packs streams of 10-bit TMDS symbols into 32-bit words for
// storage. Sixteen symbols (160 bits) fit exactly into five words. Symbols are
// placed least significant bit first and a symbol that does not fit in the
// remainder of a word carries its upper bits into the next word.
//
// Streams must be a multiple of sixteen symbols long. Pack() rejects anything
// else and PackPadded() fills the final group with a padding symbol.
package bitpack

import (
	"fmt"

	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/tmds"
)

// the number of symbols in a group and the number of words the group packs
// into
const (
	GroupSymbols = 16
	GroupWords   = 5
)

// Words returns the number of words required to pack n symbols.
func Words(n int) int {
	return (n + GroupSymbols - 1) / GroupSymbols * GroupWords
}

// Pack the symbol stream into 32-bit words. The length of the stream must be a
// multiple of GroupSymbols.
func Pack(symbols []tmds.Symbol) ([]uint32, error) {
	if len(symbols)%GroupSymbols != 0 {
		return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("bitpack: %d symbols is not a multiple of %d", len(symbols), GroupSymbols))
	}

	words := make([]uint32, 0, Words(len(symbols)))
	for g := 0; g < len(symbols); g += GroupSymbols {
		words = packGroup(words, symbols[g:g+GroupSymbols])
	}
	return words, nil
}

// PackPadded is the same as Pack() except that a stream that is not a
// multiple of GroupSymbols is padded with the pad symbol.
func PackPadded(symbols []tmds.Symbol, pad tmds.Symbol) []uint32 {
	n := len(symbols)
	if r := n % GroupSymbols; r != 0 {
		n += GroupSymbols - r
	}

	s := make([]tmds.Symbol, n)
	copy(s, symbols)
	for i := len(symbols); i < n; i++ {
		s[i] = pad
	}

	// the length is now a multiple of the group size and Pack() can not fail
	words, _ := Pack(s)
	return words
}

func packGroup(words []uint32, s []tmds.Symbol) []uint32 {
	var v [GroupSymbols]uint32
	for i := range v {
		v[i] = uint32(s[i] & tmds.SymbolMask)
	}

	// each word begins with the bits of the symbol that didn't fit into the
	// previous word. the number of those bits increases by two each word
	return append(words,
		v[0]|v[1]<<10|v[2]<<20|(v[3]&0x03)<<30,
		v[3]>>2|v[4]<<8|v[5]<<18|(v[6]&0x0f)<<28,
		v[6]>>4|v[7]<<6|v[8]<<16|(v[9]&0x3f)<<26,
		v[9]>>6|v[10]<<4|v[11]<<14|(v[12]&0xff)<<24,
		v[12]>>8|v[13]<<2|v[14]<<12|v[15]<<22,
	)
}

// Unpack is the mirror of Pack(). The number of words must be a multiple of
// GroupWords and n is the number of symbols to return, which must not be
// more than the words contain.
func Unpack(words []uint32, n int) ([]tmds.Symbol, error) {
	if len(words)%GroupWords != 0 {
		return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("bitpack: %d words is not a multiple of %d", len(words), GroupWords))
	}
	if n < 0 || n > len(words)/GroupWords*GroupSymbols {
		return nil, curated.Errorf(curated.InvalidInput, fmt.Sprintf("bitpack: %d words can not hold %d symbols", len(words), n))
	}

	symbols := make([]tmds.Symbol, 0, len(words)/GroupWords*GroupSymbols)
	for g := 0; g < len(words); g += GroupWords {
		symbols = unpackGroup(symbols, words[g:g+GroupWords])
	}
	return symbols[:n], nil
}

func unpackGroup(symbols []tmds.Symbol, w []uint32) []tmds.Symbol {
	const m = tmds.SymbolMask
	return append(symbols,
		tmds.Symbol(w[0]&m),
		tmds.Symbol(w[0]>>10&m),
		tmds.Symbol(w[0]>>20&m),
		tmds.Symbol((w[0]>>30|w[1]<<2)&m),
		tmds.Symbol(w[1]>>8&m),
		tmds.Symbol(w[1]>>18&m),
		tmds.Symbol((w[1]>>28|w[2]<<4)&m),
		tmds.Symbol(w[2]>>6&m),
		tmds.Symbol(w[2]>>16&m),
		tmds.Symbol((w[2]>>26|w[3]<<6)&m),
		tmds.Symbol(w[3]>>4&m),
		tmds.Symbol(w[3]>>14&m),
		tmds.Symbol((w[3]>>24|w[4]<<8)&m),
		tmds.Symbol(w[4]>>2&m),
		tmds.Symbol(w[4]>>12&m),
		tmds.Symbol(w[4]>>22&m),
	)
}
