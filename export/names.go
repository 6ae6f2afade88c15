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

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jetsetilly/tmdsgen/blanking"
)

// LUTName is the name of the pixel lookup table artefact.
const LUTName = "tmds_lut.bin"

// Names of the InfoFrame artefacts.
const (
	TERC4HBlankName   = "terc4_hblank_ch0.bin"
	TERC4VSyncName    = "terc4_vsync_ch0.bin"
	TERC4Channel1Name = "terc4_blank_ch1.bin"
	TERC4Channel2Name = "terc4_blank_ch2.bin"
)

// BundleExtension is appended to the name of a bundle by UniqueFilename().
const BundleExtension = ".tar.zst"

// RegionName returns the name of the artefact for one channel of a blanking
// region. For example:
//
//	hblank_ch0_nm.bin
func RegionName(kind blanking.Kind, channel int, island blanking.Island) string {
	return fmt.Sprintf("%s_ch%d_%s.bin", kind, channel, island.Suffix())
}

// PixelName returns the name of the artefact for a solid line of the 5-bit
// colour. The name uses the 8-bit expansion of the colour without the
// adjustment made by tmds.DepthConvert(). For example, colour 0x1f is
// pixel_0xff.bin
func PixelName(colour uint8) string {
	c := colour & 0x1f
	return fmt.Sprintf("pixel_0x%02x.bin", c<<3|c>>2)
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Format of returned string is:
//
//	prepend_timing_YYYYMMDD_HHMMSS.tar.zst
//
// If there is no timing ID the returned string will be of the format:
//
//	prepend_YYYYMMDD_HHMMSS.tar.zst
func UniqueFilename(prepend string, timingID string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	var fn string

	c := strings.TrimSpace(timingID)
	if len(c) > 0 {
		fn = fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	return fn + BundleExtension
}
