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

// DepthConvert expands a 5-bit colour component to 8-bits by replicating the
// upper bits of the component into the vacated lower bits. The result is
// passed through AvoidExtremes().
func DepthConvert(c uint8) uint8 {
	c &= 0x1f
	return AvoidExtremes(c<<3 | c>>2)
}

// AvoidExtremes flips the least significant bit of 0x00 and 0xff. Encoding
// 0x00 with a running disparity of -1 or -2 takes the disparity to +9 or +8
// respectively, which is outside the range of the disparity buckets in the
// LUT. 0xff is treated the same for symmetry.
//
// This is a policy for colour values that are repeated many times in a row,
// not a general rule for all data.
func AvoidExtremes(v uint8) uint8 {
	if v == 0x00 || v == 0xff {
		return v ^ 0x01
	}
	return v
}
