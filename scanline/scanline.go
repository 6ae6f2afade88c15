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

// Package scanline creates the symbol stream for an active video line of a
// single colour.
package scanline

import (
	"github.com/jetsetilly/tmdsgen/bitpack"
	"github.com/jetsetilly/tmdsgen/curated"
	"github.com/jetsetilly/tmdsgen/logger"
	"github.com/jetsetilly/tmdsgen/timing"
	"github.com/jetsetilly/tmdsgen/tmds"
)

// Solid encodes one line of HActive pixels of the 5-bit colour, starting with
// a disparity of zero. The disparity after the last pixel is returned with
// the symbols.
func Solid(spec timing.Spec, colour uint8) ([]tmds.Symbol, int) {
	v := tmds.DepthConvert(colour)

	line := make([]tmds.Symbol, spec.HActive)
	d := 0
	for i := range line {
		line[i], d = tmds.Encode(v, d)
	}

	return line, d
}

// SolidPacked is the same as Solid() except that the line is packed with the
// bitpack package. The number of active pixels must be a multiple of
// bitpack.GroupSymbols.
func SolidPacked(spec timing.Spec, colour uint8) ([]uint32, int, error) {
	line, d := Solid(spec, colour)
	w, err := bitpack.Pack(line)
	if err != nil {
		return nil, 0, curated.Errorf("scanline: %v", err)
	}

	logger.Logf(logger.Allow, "scanline", "%s: colour %#02x packed into %d words", spec.ID, colour, len(w))

	return w, d, nil
}
