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

// Package digest creates a fingerprint of a series of generated tables. The
// fingerprint is used to check that two runs of the generator produced the
// same output without keeping the output of the first run.
package digest

// Digest implementations compute a SHA-1 value of the data presented to them.
type Digest interface {
	Hash() string
	ResetDigest()
}
