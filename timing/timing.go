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

// Package timing contains the definitions of the video modes that tables can
// be generated for. The sizes of every segment of the blanking interval are
// derived from these values.
package timing

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/tmdsgen/curated"
)

// Spec is used to define a video mode. All horizontal values are in pixel
// clocks and all vertical values are in lines.
type Spec struct {
	ID string

	// the video identification code sent in the AVI InfoFrame
	VIC uint8

	HActive int
	HFront  int
	HPulse  int
	HBack   int
	HTotal  int

	VActive int
	VFront  int
	VPulse  int
	VBack   int
	VTotal  int
}

func (spec Spec) String() string {
	return fmt.Sprintf("%s (%dx%d, VIC %d)", spec.ID, spec.HActive, spec.VActive, spec.VIC)
}

// Blanking returns the number of pixel clocks in the horizontal blanking
// interval.
func (spec Spec) Blanking() int {
	return spec.HTotal - spec.HActive
}

// Validate checks that the horizontal and vertical totals agree with the
// individual parts.
func (spec Spec) Validate() error {
	for _, v := range []int{spec.HActive, spec.HFront, spec.HPulse, spec.HBack, spec.VActive, spec.VFront, spec.VPulse, spec.VBack} {
		if v <= 0 {
			return curated.Errorf(curated.InvalidInput, fmt.Sprintf("timing: %s: every period must be at least one clock/line", spec.ID))
		}
	}
	if spec.HActive+spec.HFront+spec.HPulse+spec.HBack != spec.HTotal {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("timing: %s: horizontal total is not %d", spec.ID, spec.HTotal))
	}
	if spec.VActive+spec.VFront+spec.VPulse+spec.VBack != spec.VTotal {
		return curated.Errorf(curated.InvalidInput, fmt.Sprintf("timing: %s: vertical total is not %d", spec.ID, spec.VTotal))
	}
	return nil
}

// VSyncLines returns the line on which the vertical sync pulse begins and the
// line on which it ends. Lines are numbered from zero with line zero being the
// first line of active video. The hblank of the end line is the first hblank
// with vsync inactive again.
func (spec Spec) VSyncLines() (int, int) {
	start := spec.VActive + spec.VFront
	return start, start + spec.VPulse
}

// Spec720x480 is the 720x480 mode used by the RP2040 HDMI output. The
// horizontal total is wider than the CEA mode so that the pixel clock can be
// derived from the system clock.
var Spec720x480 = Spec{
	ID:      "720x480",
	VIC:     2,
	HActive: 720,
	HFront:  32,
	HPulse:  64,
	HBack:   96,
	HTotal:  912,
	VActive: 480,
	VFront:  13,
	VPulse:  8,
	VBack:   38,
	VTotal:  539,
}

// Spec640x480 is the CEA-861 640x480p mode.
var Spec640x480 = Spec{
	ID:      "640x480",
	VIC:     1,
	HActive: 640,
	HFront:  16,
	HPulse:  96,
	HBack:   48,
	HTotal:  800,
	VActive: 480,
	VFront:  10,
	VPulse:  2,
	VBack:   33,
	VTotal:  525,
}

// SpecList is the list of specifications that can be searched for by ID. The
// first entry is the default.
var SpecList = []Spec{Spec720x480, Spec640x480}

// SearchSpec looks for a specification by its ID. The search is case
// insensitive.
func SearchSpec(id string) (Spec, error) {
	for _, spec := range SpecList {
		if strings.EqualFold(spec.ID, id) {
			return spec, nil
		}
	}
	return Spec{}, curated.Errorf(curated.InvalidInput, fmt.Sprintf("timing: unknown specification (%s)", id))
}

// IDs returns the IDs of every entry in SpecList.
func IDs() []string {
	ids := make([]string, 0, len(SpecList))
	for _, spec := range SpecList {
		ids = append(ids, spec.ID)
	}
	return ids
}
