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
)

// Symbol is a 10-bit TMDS character. Only the low 10 bits are meaningful.
//
// For symbols produced by Encode(), bit 8 is set if the XOR chain was used to
// create the code word and bit 9 is set if the low 8 bits were subsequently
// inverted to bring the running disparity back towards zero.
type Symbol uint16

// SymbolMask is the mask for the meaningful bits of a Symbol.
const SymbolMask = 0x3ff

// Markers in bits 8 and 9 of an encoded Symbol.
const (
	XORMarker      Symbol = 0x100
	InvertedMarker Symbol = 0x200
)

func (s Symbol) String() string {
	return fmt.Sprintf("%010b", uint16(s&SymbolMask))
}

// ControlSymbols are sent on every channel during control periods. On
// channel 0 the index into the table is formed from the sync lines:
//
//	vsync<<1 | hsync
//
// The sync lines are active low so the idle state is index 3. Encode() never
// produces a control symbol.
var ControlSymbols = [4]Symbol{
	0b1101010100,
	0b0010101011,
	0b0101010100,
	0b1010101011,
}

// ControlSymbol returns the control period symbol for the level of the two
// sync lines. A value of true means the line is high, ie. inactive.
func ControlSymbol(vsync bool, hsync bool) Symbol {
	return ControlSymbols[syncIndex(vsync, hsync)]
}

// IsReserved returns true if the symbol is one of the control period symbols.
func IsReserved(s Symbol) bool {
	for _, c := range ControlSymbols {
		if s&SymbolMask == c {
			return true
		}
	}
	return false
}

// Guard band symbols. A video period is preceeded by GuardBand0, GuardBand1,
// GuardBand0 on channels 0, 1 and 2. A data island is bracketed by GuardBand1
// on channels 1 and 2; channel 0 carries TERC4 encoded sync instead.
const (
	GuardBand0 Symbol = 0b1011001100
	GuardBand1 Symbol = 0b0100110011
)

// TERC4 is the table of TMDS Error Reduction Coding symbols, indexed by the
// 4-bit value being transmitted.
var TERC4 = [16]Symbol{
	0b1010011100,
	0b1001100011,
	0b1011100100,
	0b1011100010,
	0b0101110001,
	0b0100011110,
	0b0110001110,
	0b0100111100,
	0b1011001100,
	0b0100111001,
	0b0110011100,
	0b1011000110,
	0b1010001110,
	0b1001110001,
	0b0101100011,
	0b1011000011,
}

// Bits of the 4-bit value sent on channel 0 during a data island.
const (
	TERC4HSync  = 0b0001
	TERC4VSync  = 0b0010
	TERC4Header = 0b0100

	// clear only for the first symbol of a packet in the HDMI specification.
	// the tables generated here set it for every symbol
	TERC4Continuation = 0b1000
)

// SyncTERC4 returns the channel 0 data island symbol for the level of the sync
// lines and the current packet header bit.
func SyncTERC4(vsync bool, hsync bool, header bool) Symbol {
	n := TERC4Continuation | syncIndex(vsync, hsync)
	if header {
		n |= TERC4Header
	}
	return TERC4[n]
}

// GuardBandTERC4 returns the channel 0 symbol used during a data island guard
// band. Both upper bits are set and hsync is high.
func GuardBandTERC4(vsync bool) Symbol {
	return SyncTERC4(vsync, true, true)
}

func syncIndex(vsync bool, hsync bool) int {
	var n int
	if vsync {
		n |= TERC4VSync
	}
	if hsync {
		n |= TERC4HSync
	}
	return n
}
