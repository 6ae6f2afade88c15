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

// Package tmds implements the Transition Minimised Differential Signalling
// line code used by DVI and HDMI. Encode() converts an 8-bit value to a
// 10-bit symbol while keeping track of the running disparity of the channel.
//
// The package also contains the fixed symbol tables used outside of video
// periods: the control period symbols, the guard band symbols and the TERC4
// table used for data islands. These tables are never modified.
package tmds
