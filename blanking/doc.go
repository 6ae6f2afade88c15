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

// Package blanking builds the TMDS symbol streams sent during the horizontal
// blanking interval.
//
// There are four kinds of region. HBlank is the ordinary region at the end of
// every line. The three VSync kinds are used on the lines where the vertical
// sync pulse begins, continues and ends. Only channel 0 carries the sync lines
// so only channel 0 differs between the kinds.
//
// The sync pulse can optionally be a data island. Without one the sync pulse
// is a plain control period. With one, the island is filled with null packets
// or with an InfoFrame packet followed by null packets.
//
// A region for the 720x480 timing is 192 symbols long on each channel, which
// packs into 60 words:
//
//	set, err := blanking.Build(timing.Spec720x480, blanking.NullPacket)
//	if err != nil {
//		return err
//	}
//	packed, err := set.Pack()
package blanking
