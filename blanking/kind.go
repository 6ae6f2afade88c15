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

package blanking

import (
	"fmt"

	"github.com/jetsetilly/tmdsgen/infoframe"
	"github.com/jetsetilly/tmdsgen/timing"
)

// Kind is the type of blanking region. The kinds differ only in the level of
// the vsync line during the front porch, the sync pulse and the back porch.
type Kind int

// List of valid Kind values.
const (
	HBlank Kind = iota
	VSyncEnter
	VSyncActive
	VSyncExit
)

// NumKinds is the number of Kind values.
const NumKinds = 4

// Kinds lists every Kind in order.
var Kinds = [NumKinds]Kind{HBlank, VSyncEnter, VSyncActive, VSyncExit}

// String returns the name of the region as used in artefact file names.
func (k Kind) String() string {
	switch k {
	case HBlank:
		return "hblank"
	case VSyncEnter:
		return "vblank_en"
	case VSyncActive:
		return "vblank_syn"
	case VSyncExit:
		return "vblank_ex"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// vsync returns the level of the vsync line for the front porch, the sync
// pulse and the back porch. true is high (inactive).
func (k Kind) vsync() (front bool, pulse bool, back bool) {
	switch k {
	case VSyncEnter:
		return true, false, false
	case VSyncActive:
		return false, false, false
	case VSyncExit:
		return false, true, true
	}
	return true, true, true
}

// KindForLine returns the region kind that follows the active period of the
// line. Lines are numbered from zero with line zero being the first active
// line. The line number is taken modulo the vertical total.
func KindForLine(spec timing.Spec, line int) Kind {
	if spec.VTotal > 0 {
		line %= spec.VTotal
		if line < 0 {
			line += spec.VTotal
		}
	}

	start, end := spec.VSyncLines()
	switch {
	case line == start:
		return VSyncEnter
	case line > start && line < end:
		return VSyncActive
	case line == end:
		return VSyncExit
	}
	return HBlank
}

type islandMode int

const (
	noData islandMode = iota
	nullPacket
	withPacket
)

// Island describes what is sent during the sync pulse on channels 1 and 2.
type Island struct {
	mode   islandMode
	packet *infoframe.Packet
}

// NoData means the sync pulse is a plain control period with no data island.
var NoData = Island{mode: noData}

// NullPacket means the sync pulse is filled with a data island carrying
// all-zero packets.
var NullPacket = Island{mode: nullPacket}

// Packet means the sync pulse is a data island whose first packet is the one
// supplied. The remainder of the island is null.
func Packet(p *infoframe.Packet) Island {
	return Island{mode: withPacket, packet: p}
}

// HasIsland returns true if the sync pulse is a data island.
func (i Island) HasIsland() bool {
	return i.mode != noData
}

// Suffix returns the short name of the island mode as used in artefact file
// names.
func (i Island) Suffix() string {
	switch i.mode {
	case nullPacket:
		return "nm"
	case withPacket:
		return "pk"
	}
	return "nd"
}

func (i Island) String() string {
	switch i.mode {
	case nullPacket:
		return "null packet"
	case withPacket:
		return "packet"
	}
	return "no data"
}
